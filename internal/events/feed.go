// Package events carries typed notifications between the node-facing
// components and their listeners.
package events

import (
	"context"
	"sync"

	"simplepay/internal/core/domain"
)

const defaultBuffer = 32

// Feed fans out values of one event category to any number of subscribers.
// Publishing never blocks: a subscriber whose buffer is full misses the value.
type Feed[T any] struct {
	mu     sync.Mutex
	subs   map[uint64]chan T
	nextID uint64
	buffer int
	latest bool
	closed bool
}

// NewFeed creates a feed whose subscriptions buffer up to buffer values.
func NewFeed[T any](buffer int) *Feed[T] {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Feed[T]{
		subs:   make(map[uint64]chan T),
		buffer: buffer,
	}
}

// NewLatestFeed creates a feed for state values. A full subscriber drops its
// oldest buffered value instead of the new one, so the last value published
// always reaches every subscriber.
func NewLatestFeed[T any](buffer int) *Feed[T] {
	f := NewFeed[T](buffer)
	f.latest = true
	return f
}

// Subscribe registers a new subscriber. The returned cancel func removes it
// and closes the channel; it is safe to call more than once.
func (f *Feed[T]) Subscribe() (<-chan T, func()) {
	ch := make(chan T, f.buffer)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := f.nextID
	f.nextID++
	f.subs[id] = ch
	f.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			if sub, ok := f.subs[id]; ok {
				delete(f.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Publish delivers v to every subscriber with room in its buffer and returns
// the number of subscribers that received it.
func (f *Feed[T]) Publish(v T) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	delivered := 0
	for _, ch := range f.subs {
		select {
		case ch <- v:
			delivered++
			continue
		default:
		}
		if !f.latest {
			continue
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
			delivered++
		default:
		}
	}
	return delivered
}

// Close closes every subscription. Later Publish calls are no-ops and later
// subscriptions receive an already closed channel.
func (f *Feed[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	for id, ch := range f.subs {
		delete(f.subs, id)
		close(ch)
	}
}

// Consume calls fn for every value received on ch until ch is closed or ctx
// is done.
func Consume[T any](ctx context.Context, ch <-chan T, fn func(T)) {
	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-ch:
			if !ok {
				return
			}
			fn(v)
		}
	}
}

// Listen subscribes fn to the feed and blocks until ctx is done or the feed
// is closed.
func (f *Feed[T]) Listen(ctx context.Context, fn func(T)) {
	ch, cancel := f.Subscribe()
	defer cancel()
	Consume(ctx, ch, fn)
}

// Bus groups the feeds of every event category.
type Bus struct {
	Connection *Feed[domain.ConnectionChanged]
	Progress   *Feed[domain.SyncProgress]
	NewBlock   *Feed[domain.NewBlock]
	Balance    *Feed[domain.BalanceChanged]
	Output     *Feed[domain.OutputReceived]
}

// NewBus creates a bus with default-sized feeds.
func NewBus() *Bus {
	return &Bus{
		Connection: NewFeed[domain.ConnectionChanged](defaultBuffer),
		Progress:   NewFeed[domain.SyncProgress](defaultBuffer),
		NewBlock:   NewFeed[domain.NewBlock](defaultBuffer),
		Balance:    NewFeed[domain.BalanceChanged](defaultBuffer),
		Output:     NewFeed[domain.OutputReceived](defaultBuffer),
	}
}

// Close closes every feed on the bus.
func (b *Bus) Close() {
	b.Connection.Close()
	b.Progress.Close()
	b.NewBlock.Close()
	b.Balance.Close()
	b.Output.Close()
}
