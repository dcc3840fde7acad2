// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application itself; this package only defines
// the listen port, the API key that protects every route, and the shutdown grace
// period, plus validation helpers used before the listener is opened.
package server
