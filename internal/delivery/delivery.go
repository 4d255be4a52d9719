// Package delivery defines the entry points through which the outside world
// talks to the application.
package delivery

import "context"

// Delivery is a long-running transport serving the application, started by
// main and stopped through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
