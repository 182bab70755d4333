// Package emitter provides a synchronous publish/subscribe fan-out.
package emitter

import "sync"

// Listener receives emitted values.
type Listener[T any] func(value T)

type subscription[T any] struct {
	id       uint64
	listener Listener[T]
}

// Emitter delivers each emitted value to the listeners subscribed at emit
// time, in subscription order, on the caller's goroutine. Values emitted
// before a listener subscribes are not replayed.
type Emitter[T any] struct {
	mux           sync.RWMutex
	nextID        uint64
	subscriptions []subscription[T]
}

// Subscribe registers listener and returns a function removing it. The
// returned function may be called more than once.
func (e *Emitter[T]) Subscribe(listener Listener[T]) func() {
	e.mux.Lock()
	defer e.mux.Unlock()
	e.nextID++
	id := e.nextID
	e.subscriptions = append(e.subscriptions, subscription[T]{id: id, listener: listener})
	return func() { e.unsubscribe(id) }
}

func (e *Emitter[T]) unsubscribe(id uint64) {
	e.mux.Lock()
	defer e.mux.Unlock()
	for i, sub := range e.subscriptions {
		if sub.id == id {
			e.subscriptions = append(e.subscriptions[:i:i], e.subscriptions[i+1:]...)
			return
		}
	}
}

// Emit delivers value to current listeners.
func (e *Emitter[T]) Emit(value T) {
	e.mux.RLock()
	snapshot := e.subscriptions
	e.mux.RUnlock()
	for _, sub := range snapshot {
		sub.listener(value)
	}
}

// Len returns the number of listeners.
func (e *Emitter[T]) Len() int {
	e.mux.RLock()
	defer e.mux.RUnlock()
	return len(e.subscriptions)
}

// New creates an emitter.
func New[T any]() *Emitter[T] {
	return &Emitter[T]{}
}
