package pool

import (
	"sort"

	"go.uber.org/zap"

	"github.com/spawnkit/spawnpool/pkg/errors"
)

// Pool is a keyed object pool. It owns one entry per template key and a
// registry mapping every checked-out instance back to the entry it was
// drawn from. The type parameter must be comparable so instances can key
// the active registry; pointer types compare by identity and are the
// recommended choice.
//
// The zero Pool is not usable; create one with New. A Pool is not safe
// for concurrent use.
type Pool[T comparable] struct {
	factory Factory[T]
	hooks   Hooks[T]
	logger  *zap.Logger

	entries map[string]*entry[T]
	active  map[T]*entry[T]

	stats Stats
}

// New creates a pool that constructs instances with factory and invokes
// the given hooks at the documented lifecycle points. A nil logger is
// replaced with a no-op logger.
func New[T comparable](factory Factory[T], hooks Hooks[T], logger *zap.Logger) *Pool[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pool[T]{
		factory: factory,
		hooks:   hooks,
		logger:  logger,
		entries: make(map[string]*entry[T]),
		active:  make(map[T]*entry[T]),
	}
}

// entryFor returns the entry for template, creating and registering an
// empty one on first use.
func (p *Pool[T]) entryFor(template string) *entry[T] {
	e, ok := p.entries[template]
	if !ok {
		e = newEntry[T](template)
		p.entries[template] = e
		p.logger.Debug("registered pool entry", zap.String("template", template))
	}
	return e
}

// Acquire returns an instance for the given template key, recycling the
// oldest idle instance when one exists and constructing a fresh one
// otherwise. On success the instance has passed through the OnAcquire
// hook and is registered as active until released.
//
// When the factory cannot produce an instance, Acquire returns the zero
// value of T and a construction error; the template's entry still exists
// but nothing is marked active.
func (p *Pool[T]) Acquire(template string) (T, error) {
	e := p.entryFor(template)

	inst, ok := e.takeFront()
	if ok {
		p.stats.Recycled++
	} else {
		var err error
		inst, err = p.construct(template)
		if err != nil {
			var zero T
			return zero, err
		}
		p.stats.Constructed++
	}

	if p.hooks.OnAcquire != nil {
		p.hooks.OnAcquire(inst)
	}
	p.active[inst] = e
	return inst, nil
}

// construct invokes the factory and normalizes its failure modes.
func (p *Pool[T]) construct(template string) (T, error) {
	var zero T
	inst, err := p.factory(template)
	if err != nil {
		p.stats.Failed++
		p.logger.Warn("instance construction failed",
			zap.String("template", template), zap.Error(err))
		return zero, errors.Wrap(err, errors.ErrorTypeConstruction, "constructing instance").
			WithDetail("template", template)
	}
	if inst == zero {
		// A zero instance could never be tracked by the active registry.
		p.stats.Failed++
		p.logger.Warn("factory returned no instance", zap.String("template", template))
		return zero, errors.New(errors.ErrorTypeConstruction, "factory returned no instance").
			WithDetail("template", template)
	}
	return inst, nil
}

// Release returns an active instance to the idle queue of the entry it
// was drawn from, invoking the OnRelease hook first. Releasing an
// instance the pool does not consider active, including a second release
// of the same instance, is a deliberate no-op: a caller holding a stale
// reference must not be able to corrupt pool state.
func (p *Pool[T]) Release(inst T) {
	e, ok := p.active[inst]
	if !ok {
		p.logger.Debug("ignoring release of unmanaged instance")
		return
	}
	if p.hooks.OnRelease != nil {
		p.hooks.OnRelease(inst)
	}
	e.pushBack(inst)
	delete(p.active, inst)
	p.stats.Released++
}

// ReleaseAll releases every currently active instance. The active set is
// snapshotted first so each release's removal from the registry cannot
// disturb the iteration.
func (p *Pool[T]) ReleaseAll() {
	snapshot := make([]T, 0, len(p.active))
	for inst := range p.active {
		snapshot = append(snapshot, inst)
	}
	for _, inst := range snapshot {
		p.Release(inst)
	}
}

// Clear releases every active instance, drains all idle queues through
// the OnTeardown hook, and discards all entries. Afterwards the pool is
// indistinguishable from a freshly constructed one. Instances that are
// the zero value of T (a destroyed sentinel slipped in by a hook) are
// skipped by the teardown pass.
func (p *Pool[T]) Clear() {
	p.ReleaseAll()

	var zero T
	for _, e := range p.entries {
		for _, inst := range e.idle {
			if inst == zero {
				continue
			}
			if p.hooks.OnTeardown != nil {
				p.hooks.OnTeardown(inst)
			}
			p.stats.Discarded++
		}
		e.idle = nil
	}

	p.logger.Debug("pool cleared", zap.Int("templates", len(p.entries)))
	p.entries = make(map[string]*entry[T])
	p.active = make(map[T]*entry[T])
}

// Prewarm constructs up to count idle instances for the given template,
// ensuring its entry exists even when count is zero. Each successfully
// constructed instance is passed to onCreated (when non-nil) and then
// enqueued idle; construction failures are skipped without aborting the
// remaining iterations. Prewarmed instances are never marked active and
// do not pass through the acquire/release hooks.
//
// Prewarm is additive: repeated calls keep stacking idle instances.
// It returns the number of instances actually created.
func (p *Pool[T]) Prewarm(template string, count int, onCreated func(T)) int {
	e := p.entryFor(template)

	created := 0
	for i := 0; i < count; i++ {
		inst, err := p.construct(template)
		if err != nil {
			continue
		}
		if onCreated != nil {
			onCreated(inst)
		}
		e.pushBack(inst)
		p.stats.Constructed++
		created++
	}

	p.logger.Debug("prewarmed template",
		zap.String("template", template),
		zap.Int("requested", count),
		zap.Int("created", created))
	return created
}

// InactiveCount returns the number of idle instances held for template.
// Unknown templates report zero; no entry is created as a side effect.
func (p *Pool[T]) InactiveCount(template string) int {
	if e, ok := p.entries[template]; ok {
		return len(e.idle)
	}
	return 0
}

// ActiveCount returns the total number of checked-out instances across
// all templates.
func (p *Pool[T]) ActiveCount() int {
	return len(p.active)
}

// TotalCount returns the number of instances the pool knows for
// template, idle and active combined. The active portion is a linear
// scan of the registry; pools are expected to stay small enough that an
// index is not worth maintaining.
func (p *Pool[T]) TotalCount(template string) int {
	total := p.InactiveCount(template)
	for _, e := range p.active {
		if e.name == template {
			total++
		}
	}
	return total
}

// Templates returns the sorted template keys the pool currently holds an
// entry for.
func (p *Pool[T]) Templates() []string {
	names := make([]string, 0, len(p.entries))
	for name := range p.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
