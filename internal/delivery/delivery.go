// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP API, worker endpoint).
// Serve blocks until the server stops; shutdown is driven by fx lifecycle
// hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
