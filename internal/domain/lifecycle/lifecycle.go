// Package lifecycle holds shared start-up and shutdown settings.
package lifecycle

import "time"

// DefaultTimeout bounds every start or stop hook that talks to the network.
const DefaultTimeout = 10 * time.Second
