// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TimestampLayout is the human-readable layout entry timestamps are stored
// in, e.g. "05 Jan 2025, 03:45 PM".
const TimestampLayout = "02 Jan 2006, 03:04 PM"

// Entry is a titled, timestamped block of free text owned by exactly one user.
type Entry struct {
	// ID is the store-assigned identifier. Higher IDs were created later.
	ID int64 `json:"id"`

	// UserID references the owning [User].
	UserID int64 `json:"user_id"`

	// Title is a short non-empty heading.
	Title string `json:"title"`

	// Content is the non-empty entry body.
	Content string `json:"content"`

	// Timestamp is the creation or last-modification time formatted with
	// [TimestampLayout] in the display time zone at write time.
	Timestamp string `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the Entry model.
func (e Entry) TableName() string {
	return "entries"
}

// EntryUpdate overwrites title, content and timestamp of the entry ID on
// behalf of UserID.
type EntryUpdate struct {
	ID        int64
	UserID    int64
	Title     string
	Content   string
	Timestamp string
}

// EntryRequest is the request body for creating or updating an entry.
type EntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
