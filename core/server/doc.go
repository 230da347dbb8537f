// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application itself; this package only describes
// where it listens and whether the optional metrics listener is enabled.
//
// # Configuration
//
// The Config struct defines the page port, the metrics port (empty disables the
// metrics listener) and the debug flag.
package server
