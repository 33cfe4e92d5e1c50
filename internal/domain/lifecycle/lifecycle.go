// Package lifecycle holds shared constants for application start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of long-lived
// components.
const DefaultTimeout = 30 * time.Second
