// Package http implements the REST API of the diary server.
//
// Routes are mounted on a chi router. Public routes cover registration,
// login and the version probe; entry routes sit behind the bearer-token
// auth middleware and always act on the user id carried by the token.
// Request tracing, access logging, panic recovery and response compression
// are applied to every route.
package http
