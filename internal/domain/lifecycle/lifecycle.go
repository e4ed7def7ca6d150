// Package lifecycle holds the timing constants shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start or stop hook, such as pinging the database
// or draining the HTTP server.
const DefaultTimeout = 10 * time.Second
