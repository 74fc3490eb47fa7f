// Package delivery defines the contract every transport entrypoint
// (HTTP now, others later) exposes to the application bootstrap.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the
// server stops; shutdown happens through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
