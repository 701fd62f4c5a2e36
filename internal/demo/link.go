// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package demo

import (
	"slices"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-selection-sync/internal/collection"
)

// Link keeps a selection of secondaries in step with a selection of names.
// A secondary belongs to every name it contains.
//
// Selecting exactly one name selects all of its secondaries; any other
// number of names clears the secondaries. Selecting exactly one secondary
// selects its name, which in turn selects all of that name's secondaries.
// Clearing the secondaries clears the names.
type Link struct {
	names       *Selection[string]
	secondaries *Selection[string]

	// mapping counts the Link handlers in progress. Changes to the
	// secondaries made while it is non-zero are Link's own and ignored.
	mapping atomic.Int32

	namesSub       collection.Subscription
	secondariesSub collection.Subscription
}

// NewLink starts linking names to secondaries.
func NewLink(names, secondaries *Selection[string]) *Link {
	l := &Link{names: names, secondaries: secondaries}
	l.namesSub = names.Selected().Subscribe(l.onNamesChanged)
	l.secondariesSub = secondaries.Selected().Subscribe(l.onSecondariesChanged)
	return l
}

// Close stops linking.
func (l *Link) Close() {
	l.names.Selected().Unsubscribe(l.namesSub)
	l.secondaries.Selected().Unsubscribe(l.secondariesSub)
}

func (l *Link) onNamesChanged(collection.ChangeEvent[string]) error {
	l.mapping.Add(1)
	defer l.mapping.Add(-1)

	selected := l.names.Selected().Items()
	if len(selected) != 1 {
		if l.secondaries.Selected().Len() == 0 {
			return nil
		}
		return l.secondaries.ClearSelection()
	}

	var want []string
	for _, s := range l.secondaries.Available() {
		if strings.Contains(s, selected[0]) {
			want = append(want, s)
		}
	}
	return replaceAll(l.secondaries.Selected(), want)
}

func (l *Link) onSecondariesChanged(collection.ChangeEvent[string]) error {
	if l.mapping.Load() != 0 {
		return nil
	}
	l.mapping.Add(1)
	defer l.mapping.Add(-1)

	selected := l.secondaries.Selected().Items()
	switch len(selected) {
	case 0:
		if l.names.Selected().Len() == 0 {
			return nil
		}
		return l.names.ClearSelection()
	case 1:
		i := slices.IndexFunc(l.names.Available(), func(name string) bool {
			return strings.Contains(selected[0], name)
		})
		if i < 0 {
			return nil
		}
		return replaceAll(l.names.Selected(), []string{l.names.Available()[i]})
	default:
		return nil
	}
}

// replaceAll makes list hold exactly want, in order, unless it already
// holds the same set.
func replaceAll(list *collection.ObservableList[string], want []string) error {
	have := list.Items()
	if len(have) == len(want) && !slices.ContainsFunc(want, func(s string) bool { return !slices.Contains(have, s) }) {
		return nil
	}
	if err := list.Clear(); err != nil {
		return err
	}
	return list.AddRange(want...)
}
