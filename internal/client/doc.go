// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It picks a session backend (a diary server over HTTP, or the database
// opened in-process) and runs the terminal UI on top of it until the user
// quits.
package client
