// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collection

import (
	"fmt"
	"slices"
)

// PlainList is a [List] that never reports its mutations.
// It is not safe for concurrent use.
type PlainList[T any] struct {
	items []T
}

var _ List[string] = (*PlainList[string])(nil)

// NewPlainList returns a list holding a copy of items.
func NewPlainList[T any](items ...T) *PlainList[T] {
	return &PlainList[T]{items: slices.Clone(items)}
}

func (l *PlainList[T]) Len() int     { return len(l.items) }
func (l *PlainList[T]) At(i int) T   { return l.items[i] }
func (l *PlainList[T]) Items() []T   { return slices.Clone(l.items) }
func (l *PlainList[T]) Clear() error { l.items = nil; return nil }

func (l *PlainList[T]) isNil() bool {
	return l == nil
}

func (l *PlainList[T]) Append(v T) error {
	l.items = append(l.items, v)
	return nil
}

func (l *PlainList[T]) Insert(i int, v T) error {
	if i < 0 || i > len(l.items) {
		return fmt.Errorf("insert at %d into list of %d: %w", i, len(l.items), ErrIndexOutOfRange)
	}
	l.items = slices.Insert(l.items, i, v)
	return nil
}

func (l *PlainList[T]) RemoveAt(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("remove at %d from list of %d: %w", i, len(l.items), ErrIndexOutOfRange)
	}
	l.items = slices.Delete(l.items, i, i+1)
	return nil
}
