// Package delivery defines the inbound surfaces started by the application.
package delivery

import "context"

// Delivery is a long-running inbound server.
type Delivery interface {
	// Serve blocks until the server stops. A graceful shutdown is not an error.
	Serve(ctx context.Context) error
}
