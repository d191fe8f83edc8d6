// Package delivery defines the contract every transport implementation satisfies.
package delivery

import "context"

// Delivery is a transport that serves the application until its context ends.
type Delivery interface {
	Serve(ctx context.Context) error
}
