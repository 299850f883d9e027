// Package lifecycle holds shared start/stop constants for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (ping, load, shutdown).
const DefaultTimeout = 10 * time.Second
