// Package spawnpool provides a keyed object pool toolkit for reusable,
// expensive-to-construct instances, built around a single bookkeeping
// engine that recycles instances instead of destroying and recreating them.
//
// Spawnpool is organized around three ideas:
//
// 1. One engine: pool.Pool[T] owns all lifecycle bookkeeping: per-template
// idle queues, the active registry, and the transitions between idle and
// active. It is the single source of truth for whether an instance is
// known, and if so under which template and in which state.
//
// 2. Pluggable construction and destruction: how an instance is physically
// built, decorated on checkout, or destroyed is supplied by the caller as
// a pool.Factory and optional pool.Hooks. The engine never assumes a
// concrete instance type or destruction mechanism.
//
// 3. Cooperative single-threaded use: every operation runs synchronously
// to completion on the caller's goroutine. Deployments that share a pool
// across goroutines serialize access externally.
//
// # Quick Start
//
//	import (
//	    "github.com/spawnkit/spawnpool/pkg/pool"
//	)
//
//	p := pool.New(newEnemy, pool.Hooks[*Enemy]{OnTeardown: (*Enemy).Free}, nil)
//	p.Prewarm("grunt", 8, nil)
//
//	e, err := p.Acquire("grunt")
//	if err != nil {
//	    // the factory could not construct an instance
//	}
//	defer p.Release(e)
//
// # Package Organization
//
//   - pkg/pool: the keyed pool engine
//   - pkg/config: YAML pool configuration
//   - pkg/logger: structured logging (zap)
//   - pkg/metrics: prometheus collectors for pool activity
//   - pkg/errors: structured error types
//   - cmd/spawnpool: CLI for demo workloads and reports
package spawnpool
