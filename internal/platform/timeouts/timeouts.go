// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// APIRequest caps a single web-to-API conversion call.
const APIRequest = 3 * time.Second

// TelemetryShutdown caps the final span flush when a service exits.
const TelemetryShutdown = 5 * time.Second
