// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo describes the go-diary client binary. cmd/client fills it
// from -ldflags; the TUI about window prints it next to the version the
// server reports on /api/version/.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo keeps the values as given; a plain `go build` leaves all
// three empty.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// String is the one-line form written to the client log at startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("go-diary %s (commit %s, built %s)",
		orUnknown(a.buildVersion), orUnknown(a.buildCommit), orUnknown(a.buildDate))
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
