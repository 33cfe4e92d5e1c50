// Package delivery defines the contract implemented by every server the
// application can run.
package delivery

import "context"

// Delivery is a long-running entry point, such as an HTTP server. Serve
// blocks until the delivery stops; graceful shutdown is driven through
// lifecycle hooks rather than ctx.
type Delivery interface {
	Serve(ctx context.Context) error
}
