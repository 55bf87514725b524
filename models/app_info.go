package models

// AppInfo is the payload of the version endpoint.
type AppInfo struct {
	Version string `json:"version"`
}
