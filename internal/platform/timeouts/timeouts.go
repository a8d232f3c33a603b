// Package timeouts defines shared timeout constants used across the
// console. Centralizing these values prevents drift between boundaries
// and makes the durations discoverable.
package timeouts

import "time"

// APIRequest caps a single marketplace API round trip issued by the
// console.
const APIRequest = 10 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
