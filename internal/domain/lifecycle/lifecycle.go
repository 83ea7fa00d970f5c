// Package lifecycle holds shared timeouts for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a component may take to start or shut down.
const DefaultTimeout = 10 * time.Second
