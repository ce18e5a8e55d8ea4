package cache

import "context"

// Store is a namespaced key/value cache. Individual Get and Set calls are
// atomic; no cross-call transaction is offered, last write wins.
type Store interface {
	// Get returns the value and true when the key is present.
	Get(ctx context.Context, ns Namespace, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, ns Namespace, key, value string) error
}
