// Package admin implements the maintenance commands of the go-diary admin
// binary: schema migration and account management.
package admin
