// Package server runs the HTTP server of the media hub.
//
// It owns the listener lifecycle: startup, stop signals and graceful
// shutdown bounded by the configured timeout.
package server
