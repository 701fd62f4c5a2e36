// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collection

import "github.com/google/uuid"

// List is an ordered, index-addressable sequence.
type List[T any] interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at index i. It panics if i is out of range,
	// like slice indexing.
	At(i int) T
	// Items returns a snapshot copy of the elements.
	Items() []T
	// Insert places v at index i, shifting later elements up.
	// i == Len() appends.
	Insert(i int, v T) error
	// Append adds v at the end of the list.
	Append(v T) error
	// RemoveAt removes the element at index i, shifting later elements down.
	RemoveAt(i int) error
	// Clear removes all elements.
	Clear() error
}

// Handler receives change events from an [Observable]. A returned error is
// reported back to the caller of the mutating operation.
type Handler[T any] func(e ChangeEvent[T]) error

// Subscription identifies a registered [Handler].
type Subscription uuid.UUID

// Observable is a [List] that reports its mutations.
type Observable[T any] interface {
	List[T]
	// Subscribe registers h and returns the token that removes it.
	Subscribe(h Handler[T]) Subscription
	// Unsubscribe removes the handler registered under s. Unknown tokens
	// are ignored.
	Unsubscribe(s Subscription)
	// Without returns a view of the list whose own mutations are not
	// reported to the handler registered under s.
	Without(s Subscription) List[T]
}
