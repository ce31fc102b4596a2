// Package delivery defines the contract every transport implementation fulfils.
package delivery

import "context"

// Delivery is a serving transport (HTTP today). Serve blocks until the
// transport stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
