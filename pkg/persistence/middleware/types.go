package middleware

import "github.com/aretw0/devsession/pkg/ports"

// Middleware allows wrapping a KeyValueStore to add behavior.
type Middleware func(ports.KeyValueStore) ports.KeyValueStore

// Chain composes middlewares so that the first one is the outermost wrapper.
func Chain(mws ...Middleware) Middleware {
	return func(next ports.KeyValueStore) ports.KeyValueStore {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}
