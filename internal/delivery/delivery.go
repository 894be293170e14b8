// Package delivery defines the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a long-running inbound transport started by the composition root.
type Delivery interface {
	// Serve blocks until the transport stops. A graceful stop returns nil.
	Serve(ctx context.Context) error
}
