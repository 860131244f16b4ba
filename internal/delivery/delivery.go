// Package delivery defines the entry points through which the outside world
// reaches the application.
package delivery

import "context"

// Delivery is implemented by every transport the application serves on.
// Serve blocks until the transport stops or ctx is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
