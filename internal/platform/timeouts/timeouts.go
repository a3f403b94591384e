// Package timeouts holds the deadlines shared by the web service and its
// command.
package timeouts

import "time"

const (
	// APIRequest caps one call to the REST backend.
	APIRequest = 10 * time.Second
	ReadHeader = 5 * time.Second
	// Shutdown bounds graceful HTTP shutdown and the telemetry flush.
	Shutdown = 5 * time.Second
	// StoreOpen bounds the Redis ping at startup.
	StoreOpen = 3 * time.Second
)
