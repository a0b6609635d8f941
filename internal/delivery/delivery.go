// Package delivery defines the entry points that expose the application.
package delivery

import "context"

// Delivery is a server started by main and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
