// Package http implements the read-only HTTP transport of the application.
//
// It exposes route wiring, request handlers and middleware for browsing the
// resolved deployment profiles. Request tracing, access logging and response
// compression are handled here before requests reach the service layer.
package http
