package pool

// Stats holds cumulative pool counters. Counters only ever increase;
// Clear does not reset them.
type Stats struct {
	// Constructed is the number of instances the factory produced,
	// through both acquisition misses and prewarming.
	Constructed int64 `json:"constructed"`
	// Recycled is the number of acquisitions served from an idle queue.
	Recycled int64 `json:"recycled"`
	// Released is the number of effective releases (unmanaged releases
	// are not counted).
	Released int64 `json:"released"`
	// Discarded is the number of idle instances drained by Clear.
	Discarded int64 `json:"discarded"`
	// Failed is the number of factory invocations that produced no
	// usable instance.
	Failed int64 `json:"failed"`
}

// Stats returns a snapshot of the pool's cumulative counters.
func (p *Pool[T]) Stats() Stats {
	return p.stats
}

// TemplateStats describes the current population of one template entry.
type TemplateStats struct {
	Template string `json:"template"`
	Idle     int    `json:"idle"`
	Active   int    `json:"active"`
}

// StatsByTemplate reports the idle/active population per known template,
// ordered by template key.
func (p *Pool[T]) StatsByTemplate() []TemplateStats {
	out := make([]TemplateStats, 0, len(p.entries))
	for _, name := range p.Templates() {
		out = append(out, TemplateStats{
			Template: name,
			Idle:     p.InactiveCount(name),
			Active:   p.TotalCount(name) - p.InactiveCount(name),
		})
	}
	return out
}
