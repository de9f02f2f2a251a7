package pool

// Factory constructs a new instance for a template key. It is consulted
// whenever an acquisition finds no idle instance, and once per requested
// instance during prewarming. Returning an error (or the zero value of T
// with a nil error) signals that construction is impossible; the pool
// records the failure and never registers such a result.
//
// Repeated calls with the same key must produce interchangeable instances.
type Factory[T comparable] func(template string) (T, error)

// Hooks are optional lifecycle callbacks supplied by the pool's owner.
// A nil function is simply skipped. Hooks run synchronously inside pool
// operations and must not call back into the same pool.
type Hooks[T comparable] struct {
	// OnAcquire runs on every instance handed to a caller, whether
	// recycled or freshly constructed, before it is marked active.
	OnAcquire func(T)

	// OnRelease runs on every managed instance returned to the pool,
	// before it re-enters its entry's idle queue.
	OnRelease func(T)

	// OnTeardown runs on each idle instance drained by Clear. Released
	// instances are never torn down outside of Clear; if no teardown
	// hook is configured, drained instances are dropped from
	// bookkeeping and their disposal is the caller's responsibility.
	OnTeardown func(T)
}
