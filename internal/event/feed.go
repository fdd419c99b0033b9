// Package event provides a small synchronous listener feed, typed by
// its payload. It lets state owners notify views without either side
// depending on the other.
package event

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// Listener is a callback receiving a published value.
type Listener[T any] func(T)

// subscription represents one registered listener.
type subscription[T any] struct {
	id       string
	listener Listener[T]
}

// Feed is a synchronous fan-out of values of type T. Publish invokes
// every listener on the caller's goroutine, in registration order.
// A Feed is safe for concurrent use.
type Feed[T any] struct {
	mu            sync.RWMutex
	subscriptions []subscription[T]
	nextID        atomic.Uint64

	// onPanic, when set, observes recovered listener panics.
	onPanic func(recovered any, stack []byte)
}

// NewFeed creates an empty feed.
func NewFeed[T any]() *Feed[T] {
	return &Feed[T]{}
}

// SetPanicHandler installs a hook observing recovered listener panics.
// Without a hook, panics are still recovered but go unreported.
func (f *Feed[T]) SetPanicHandler(h func(recovered any, stack []byte)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onPanic = h
}

// Subscribe registers a listener and returns a token for Unsubscribe.
// Listeners are never called at subscribe time, only on Publish.
func (f *Feed[T]) Subscribe(fn Listener[T]) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := fmt.Sprintf("sub-%d", f.nextID.Add(1))
	f.subscriptions = append(f.subscriptions, subscription[T]{id: id, listener: fn})
	return id
}

// Unsubscribe removes a subscription by token.
// Returns true if the subscription was found and removed.
func (f *Feed[T]) Unsubscribe(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, sub := range f.subscriptions {
		if sub.id == id {
			f.subscriptions = append(f.subscriptions[:i], f.subscriptions[i+1:]...)
			return true
		}
	}
	return false
}

// Publish delivers v to every listener in registration order. The
// subscription list is copied before dispatch, so listeners may
// subscribe or unsubscribe from within a callback without corrupting
// the iteration.
func (f *Feed[T]) Publish(v T) {
	f.PublishFunc(func() T { return v })
}

// PublishFunc delivers a separately produced value to each listener,
// calling next once per listener. Use it when every listener must
// receive its own copy of a snapshot rather than a shared value.
func (f *Feed[T]) PublishFunc(next func() T) {
	f.mu.RLock()
	subs := make([]subscription[T], len(f.subscriptions))
	copy(subs, f.subscriptions)
	hook := f.onPanic
	f.mu.RUnlock()

	for _, sub := range subs {
		f.safeCall(sub.listener, next(), hook)
	}
}

// Len returns the number of active subscriptions.
func (f *Feed[T]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subscriptions)
}

// safeCall invokes a listener and recovers from any panic so one
// misbehaving listener cannot block delivery to the rest.
func (f *Feed[T]) safeCall(fn Listener[T], v T, hook func(any, []byte)) {
	defer func() {
		if r := recover(); r != nil && hook != nil {
			hook(r, debug.Stack())
		}
	}()
	fn(v)
}
