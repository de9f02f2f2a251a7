// Package pool provides a keyed object pool for expensive-to-construct
// instances. Instances are grouped by an opaque template key; any two
// instances under the same key are interchangeable. The pool recycles
// released instances instead of destroying them, amortizing construction
// cost across acquisitions.
//
// The pool tracks every instance it has produced in exactly one of two
// places: the idle queue of its template entry, or the active registry
// mapping a checked-out instance back to that entry. Construction,
// decoration and destruction of instances are supplied by the caller as
// a Factory and optional Hooks; the pool itself only does bookkeeping.
//
// Example usage:
//
//	p := pool.New(func(template string) (*Sprite, error) {
//	    return loadSprite(template)
//	}, pool.Hooks[*Sprite]{
//	    OnAcquire:  func(s *Sprite) { s.Show() },
//	    OnRelease:  func(s *Sprite) { s.Hide() },
//	    OnTeardown: func(s *Sprite) { s.Free() },
//	}, logger)
//
//	p.Prewarm("enemy", 8, nil)
//
//	s, err := p.Acquire("enemy")
//	if err != nil {
//	    return err
//	}
//	// ... use s ...
//	p.Release(s)
//
// A Pool is not safe for concurrent use. Every operation runs to
// completion on the caller's goroutine with no internal locking;
// callers that share a pool across goroutines must serialize access
// externally. Hooks and factories are invoked synchronously and must
// not call back into the pool that invoked them.
package pool
