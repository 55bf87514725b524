// Package session holds the interactive state of a single diary client.
//
// A [Session] starts Anonymous, becomes Authenticated after a successful
// Login and returns to Anonymous on Logout. Entry operations are refused
// while Anonymous and always act as the held [Identity]. The same Session
// runs against an in-process [Backend] built on the service layer or against
// a remote diary server through the HTTP adapter.
package session
