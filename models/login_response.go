package models

// LoginResponse is returned by the login endpoint alongside the
// Authorization header.
type LoginResponse struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}
