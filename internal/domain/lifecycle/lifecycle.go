// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout is the grace period for shutdown hooks (HTTP drain, DB close).
const DefaultTimeout = 10 * time.Second
