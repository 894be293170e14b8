// Package lifecycle holds shared bounds for process start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every fx OnStart/OnStop hook (database ping, migrations, HTTP shutdown).
const DefaultTimeout = 15 * time.Second
