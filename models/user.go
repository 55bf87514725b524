// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a diary account. Username is globally unique and immutable after
// registration.
type User struct {
	// UserID is the store-assigned identifier.
	UserID int64 `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// PasswordHash holds the encoded argon2id hash of the password.
	// It never leaves the server process.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the username/password pair submitted on registration and
// login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
