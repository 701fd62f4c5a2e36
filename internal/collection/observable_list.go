// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collection

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

// Filter decides whether item may join a list whose current content is
// current. Rejected items are dropped silently.
type Filter[T any] func(current []T, item T) bool

// Option configures an [ObservableList].
type Option[T any] func(*ObservableList[T])

// WithFilter installs an acceptance filter consulted by every insertion
// (Insert, Append, AddRange and Set).
func WithFilter[T any](f Filter[T]) Option[T] {
	return func(l *ObservableList[T]) {
		l.filter = f
	}
}

// WithItems seeds the list without emitting events.
func WithItems[T any](items ...T) Option[T] {
	return func(l *ObservableList[T]) {
		l.items = append(l.items, items...)
	}
}

type subscriber[T any] struct {
	id      Subscription
	handler Handler[T]
}

// delivery is a committed event together with the subscribers that were
// registered, and not muted, when it was committed.
type delivery[T any] struct {
	event       ChangeEvent[T]
	subscribers []subscriber[T]
}

// ObservableList is a goroutine-safe list that notifies subscribers after
// each committed mutation.
//
// Handlers are called on the mutating goroutine once the list's own lock
// has been released, so they may read or mutate the list. Events are
// delivered one at a time in commit order: a mutation committed while an
// earlier event is still being delivered is queued, and the goroutine that
// is delivering hands it to every subscriber once the earlier event is
// done. Such a mutating call returns without waiting for its handlers; their
// errors are reported by the call that started the delivery.
type ObservableList[T any] struct {
	mu          sync.RWMutex
	items       []T
	subscribers []subscriber[T]
	filter      Filter[T]

	pending    []delivery[T]
	delivering bool
}

var _ Observable[string] = (*ObservableList[string])(nil)

// NewObservableList creates an empty list configured by opts.
func NewObservableList[T any](opts ...Option[T]) *ObservableList[T] {
	l := &ObservableList[T]{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *ObservableList[T]) isNil() bool {
	return l == nil
}

func (l *ObservableList[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

func (l *ObservableList[T]) At(i int) T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items[i]
}

func (l *ObservableList[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.items)
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *ObservableList[T]) IndexOf(v T) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return indexOf(l.items, v)
}

// Contains reports whether an element equal to v is present.
func (l *ObservableList[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

func (l *ObservableList[T]) Subscribe(h Handler[T]) Subscription {
	id := Subscription(uuid.New())

	l.mu.Lock()
	l.subscribers = append(l.subscribers, subscriber[T]{id: id, handler: h})
	l.mu.Unlock()

	return id
}

func (l *ObservableList[T]) Unsubscribe(s Subscription) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.subscribers = slices.DeleteFunc(l.subscribers, func(sub subscriber[T]) bool {
		return sub.id == s
	})
}

// Without returns a view of l whose mutations are not reported to the
// subscriber registered under s. Mutations made by handlers while such a
// mutation is being delivered are reported as usual.
func (l *ObservableList[T]) Without(s Subscription) List[T] {
	return &mutedList[T]{list: l, mute: s}
}

func (l *ObservableList[T]) Append(v T) error {
	return l.append(v, noSubscription)
}

func (l *ObservableList[T]) Insert(i int, v T) error {
	return l.insert(i, v, noSubscription)
}

// AddRange appends every accepted element of vs and reports them as a
// single add.
func (l *ObservableList[T]) AddRange(vs ...T) error {
	l.mu.Lock()
	index := len(l.items)
	added := make([]T, 0, len(vs))
	for _, v := range vs {
		if !l.accepts(v) {
			continue
		}
		l.items = append(l.items, v)
		added = append(added, v)
	}
	if len(added) == 0 {
		l.mu.Unlock()
		return nil
	}
	return l.commit(addedEvent(index, added...), noSubscription)
}

func (l *ObservableList[T]) RemoveAt(i int) error {
	return l.removeRange(i, 1, noSubscription)
}

// RemoveRange removes count elements starting at index i and reports them
// as a single remove.
func (l *ObservableList[T]) RemoveRange(i, count int) error {
	return l.removeRange(i, count, noSubscription)
}

// Remove removes the first element equal to v. It reports whether an
// element was removed.
func (l *ObservableList[T]) Remove(v T) (bool, error) {
	l.mu.Lock()
	i := indexOf(l.items, v)
	if i < 0 {
		l.mu.Unlock()
		return false, nil
	}
	removed := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return true, l.commit(removedEvent(i, removed), noSubscription)
}

// Set replaces the element at index i. A value rejected by the filter
// leaves the list unchanged.
func (l *ObservableList[T]) Set(i int, v T) error {
	l.mu.Lock()
	if i < 0 || i >= len(l.items) {
		n := len(l.items)
		l.mu.Unlock()
		return fmt.Errorf("set %d in list of %d: %w", i, n, ErrIndexOutOfRange)
	}
	others := slices.Delete(slices.Clone(l.items), i, i+1)
	if l.filter != nil && !l.filter(others, v) {
		l.mu.Unlock()
		return nil
	}
	old := l.items[i]
	l.items[i] = v
	return l.commit(replacedEvent(i, old, v), noSubscription)
}

// Move relocates the element at oldIndex so that it ends up at newIndex.
func (l *ObservableList[T]) Move(oldIndex, newIndex int) error {
	l.mu.Lock()
	n := len(l.items)
	if oldIndex < 0 || oldIndex >= n || newIndex < 0 || newIndex >= n {
		l.mu.Unlock()
		return fmt.Errorf("move %d to %d in list of %d: %w", oldIndex, newIndex, n, ErrIndexOutOfRange)
	}
	item := l.items[oldIndex]
	l.items = slices.Delete(l.items, oldIndex, oldIndex+1)
	l.items = slices.Insert(l.items, newIndex, item)
	return l.commit(movedEvent(oldIndex, newIndex, item), noSubscription)
}

func (l *ObservableList[T]) Clear() error {
	return l.clear(noSubscription)
}

func (l *ObservableList[T]) append(v T, mute Subscription) error {
	l.mu.Lock()
	if !l.accepts(v) {
		l.mu.Unlock()
		return nil
	}
	index := len(l.items)
	l.items = append(l.items, v)
	return l.commit(addedEvent(index, v), mute)
}

func (l *ObservableList[T]) insert(i int, v T, mute Subscription) error {
	l.mu.Lock()
	if i < 0 || i > len(l.items) {
		n := len(l.items)
		l.mu.Unlock()
		return fmt.Errorf("insert at %d into list of %d: %w", i, n, ErrIndexOutOfRange)
	}
	if !l.accepts(v) {
		l.mu.Unlock()
		return nil
	}
	l.items = slices.Insert(l.items, i, v)
	return l.commit(addedEvent(i, v), mute)
}

func (l *ObservableList[T]) removeRange(i, count int, mute Subscription) error {
	if count < 0 {
		return fmt.Errorf("remove %d elements: %w", count, ErrNegativeCount)
	}

	l.mu.Lock()
	if i < 0 || i+count > len(l.items) {
		n := len(l.items)
		l.mu.Unlock()
		return fmt.Errorf("remove [%d,%d) from list of %d: %w", i, i+count, n, ErrIndexOutOfRange)
	}
	if count == 0 {
		l.mu.Unlock()
		return nil
	}
	removed := slices.Clone(l.items[i : i+count])
	l.items = slices.Delete(l.items, i, i+count)
	return l.commit(removedEvent(i, removed...), mute)
}

func (l *ObservableList[T]) clear(mute Subscription) error {
	l.mu.Lock()
	l.items = nil
	return l.commit(resetEvent[T](), mute)
}

func (l *ObservableList[T]) accepts(v T) bool {
	return l.filter == nil || l.filter(l.items, v)
}

// commit must be called with l.mu held. It queues e for the subscribers
// registered now, except mute, and releases the lock. Unless another call
// is already delivering, it then delivers the queue until it is empty.
func (l *ObservableList[T]) commit(e ChangeEvent[T], mute Subscription) error {
	subs := slices.DeleteFunc(slices.Clone(l.subscribers), func(sub subscriber[T]) bool {
		return sub.id == mute
	})
	l.pending = append(l.pending, delivery[T]{event: e, subscribers: subs})
	if l.delivering {
		l.mu.Unlock()
		return nil
	}
	l.delivering = true
	l.mu.Unlock()

	return l.deliver()
}

func (l *ObservableList[T]) deliver() error {
	var errs []error
	defer func() {
		if r := recover(); r != nil {
			l.mu.Lock()
			l.pending = nil
			l.delivering = false
			l.mu.Unlock()
			panic(r)
		}
	}()

	for {
		l.mu.Lock()
		if len(l.pending) == 0 {
			l.pending = nil
			l.delivering = false
			l.mu.Unlock()
			return errors.Join(errs...)
		}
		d := l.pending[0]
		l.pending = l.pending[1:]
		l.mu.Unlock()

		for _, sub := range d.subscribers {
			if err := sub.handler(d.event); err != nil {
				errs = append(errs, err)
			}
		}
	}
}

func indexOf[T any](items []T, v T) int {
	return slices.IndexFunc(items, func(item T) bool {
		return cmp.Equal(item, v)
	})
}
