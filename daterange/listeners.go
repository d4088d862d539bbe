package daterange

import (
	"slices"

	"github.com/google/uuid"
)

// Registration detaches a listener it was returned for. Remove is
// idempotent.
type Registration interface {
	Remove()
}

type listenerEntry[E any] struct {
	id uuid.UUID
	fn func(E)
}

// listenerList keeps listeners in registration order.
type listenerList[E any] struct {
	entries []listenerEntry[E]
}

func (l *listenerList[E]) add(fn func(E)) *registration {
	id := uuid.New()
	l.entries = append(l.entries, listenerEntry[E]{id: id, fn: fn})
	return &registration{id: id, remove: func() { l.remove(id) }}
}

func (l *listenerList[E]) remove(id uuid.UUID) {
	l.entries = slices.DeleteFunc(l.entries, func(e listenerEntry[E]) bool { return e.id == id })
}

func (l *listenerList[E]) contains(id uuid.UUID) bool {
	return slices.ContainsFunc(l.entries, func(e listenerEntry[E]) bool { return e.id == id })
}

func (l *listenerList[E]) len() int { return len(l.entries) }

// fire calls every listener registered when dispatch starts, skipping any
// that an earlier listener removed.
func (l *listenerList[E]) fire(ev E) {
	snapshot := slices.Clone(l.entries)
	for _, e := range snapshot {
		if !l.contains(e.id) {
			continue
		}
		e.fn(ev)
	}
}

type registration struct {
	id     uuid.UUID
	remove func()
}

// ID identifies the registration, mostly useful in logs.
func (r *registration) ID() string { return r.id.String() }

func (r *registration) Remove() {
	if r.remove == nil {
		return
	}
	r.remove()
	r.remove = nil
}
