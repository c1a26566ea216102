// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a transport surface (HTTP today) that can be started by the
// process wiring and stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
