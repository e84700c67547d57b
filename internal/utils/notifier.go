package utils

import "sync"

// Notifier fans values out to any number of subscribers.
//
// Publish never blocks. A subscriber whose buffer is full loses its oldest
// buffered value, so the most recent value is always the last one it
// receives. Intermediate values may be skipped under load.
type Notifier[T any] struct {
	mu     sync.Mutex
	subs   map[int]chan T
	next   int
	closed bool
}

// NewNotifier returns an empty Notifier.
func NewNotifier[T any]() *Notifier[T] {
	return &Notifier[T]{subs: make(map[int]chan T)}
}

// Subscribe registers a new subscriber with a buffer of size buf (at least
// 1). The returned cancel func unregisters it and closes the channel; it is
// safe to call more than once.
func (n *Notifier[T]) Subscribe(buf int) (<-chan T, func()) {
	if buf < 1 {
		buf = 1
	}
	ch := make(chan T, buf)

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		close(ch)
		return ch, func() {}
	}

	id := n.next
	n.next++
	n.subs[id] = ch

	return ch, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if sub, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(sub)
		}
	}
}

// Publish delivers v to every subscriber, evicting the oldest buffered
// value of a subscriber that has fallen behind.
func (n *Notifier[T]) Publish(v T) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		for {
			select {
			case ch <- v:
			default:
				select {
				case <-ch:
				default:
				}
				continue
			}
			break
		}
	}
}

// Len returns the number of active subscribers.
func (n *Notifier[T]) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}

// Close closes every subscriber channel. Later subscriptions receive an
// already closed channel.
func (n *Notifier[T]) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true
	for id, ch := range n.subs {
		delete(n.subs, id)
		close(ch)
	}
}
