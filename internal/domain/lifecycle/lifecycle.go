// Package lifecycle holds shared timing constants for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single fx start or stop hook.
const DefaultTimeout = 10 * time.Second
