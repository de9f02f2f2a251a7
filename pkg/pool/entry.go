package pool

// entry holds all known idle instances for one template key.
// The idle queue is FIFO: released instances go to the back, acquisitions
// take from the front so reuse is spread evenly across instances.
type entry[T comparable] struct {
	name string
	idle []T
}

func newEntry[T comparable](name string) *entry[T] {
	return &entry[T]{name: name}
}

// takeFront removes and returns the oldest idle instance.
func (e *entry[T]) takeFront() (T, bool) {
	var zero T
	if len(e.idle) == 0 {
		return zero, false
	}
	inst := e.idle[0]
	e.idle[0] = zero // drop the reference so the backing array does not pin it
	e.idle = e.idle[1:]
	return inst, true
}

// pushBack appends a returned instance behind all currently idle ones.
func (e *entry[T]) pushBack(inst T) {
	e.idle = append(e.idle, inst)
}
