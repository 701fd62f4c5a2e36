// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collection

// noSubscription is never issued by Subscribe, so muting it mutes nobody.
var noSubscription Subscription

// mutedList is the view returned by [ObservableList.Without].
type mutedList[T any] struct {
	list *ObservableList[T]
	mute Subscription
}

var _ List[string] = (*mutedList[string])(nil)

func (m *mutedList[T]) Len() int {
	return m.list.Len()
}

func (m *mutedList[T]) At(i int) T {
	return m.list.At(i)
}

func (m *mutedList[T]) Items() []T {
	return m.list.Items()
}

func (m *mutedList[T]) Clear() error {
	return m.list.clear(m.mute)
}

func (m *mutedList[T]) Append(v T) error {
	return m.list.append(v, m.mute)
}

func (m *mutedList[T]) Insert(i int, v T) error {
	return m.list.insert(i, v, m.mute)
}

func (m *mutedList[T]) RemoveAt(i int) error {
	return m.list.removeRange(i, 1, m.mute)
}

// IsNil reports whether l is nil or wraps a nil list of this package, such
// as a (*ObservableList[T])(nil) stored in a List[T].
func IsNil[T any](l List[T]) bool {
	if l == nil {
		return true
	}
	n, ok := l.(interface{ isNil() bool })
	return ok && n.isNil()
}
