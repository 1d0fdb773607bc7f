// Package server holds the HTTP server configuration.
//
// The management API (activation reports, history, FastDL sync) is served by the
// start command; this package only defines where it listens and how it is protected.
//
// # Configuration
//
// The Config struct defines the bind host, the HTTP port and the API key.
package server
