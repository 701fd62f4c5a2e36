// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package selection

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-selection-sync/internal/collection"
)

// Kind tells which selection accessor a widget offers.
type Kind int

const (
	// KindPlain widgets have no selection.
	KindPlain Kind = iota
	// KindListSelector widgets select items of their item source.
	KindListSelector
	// KindMultiSelector widgets select several rows, as a list selector does.
	KindMultiSelector
	// KindCalendar widgets select dates.
	KindCalendar
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindListSelector:
		return "list-selector"
	case KindMultiSelector:
		return "multi-selector"
	case KindCalendar:
		return "calendar"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Widget is the identity of a bindable UI element.
type Widget interface {
	ID() string
	Kind() Kind
}

// ItemsSelector is implemented by list and multi selectors.
type ItemsSelector[T any] interface {
	Widget
	SelectedItems() *collection.ObservableList[T]
}

// DateSelector is implemented by calendars.
type DateSelector interface {
	Widget
	SelectedDates() *collection.ObservableList[time.Time]
}

// SelectionCollection returns the list that acts as master for w.
// It fails with [ErrNoSelectableCollection] if the widget kind has no
// selection, its elements are not of type T or the widget hands out a nil
// list. A typed nil widget pointer is not detected; Kind is called on it.
func SelectionCollection[T any](w Widget) (collection.List[T], error) {
	if w == nil {
		return nil, ErrNilWidget
	}

	switch w.Kind() {
	case KindListSelector, KindMultiSelector:
		if s, ok := w.(ItemsSelector[T]); ok && !collection.IsNil[T](s.SelectedItems()) {
			return s.SelectedItems(), nil
		}
	case KindCalendar:
		if d, ok := w.(DateSelector); ok {
			if l, ok := any(d.SelectedDates()).(collection.List[T]); ok && !collection.IsNil(l) {
				return l, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %s %q", ErrNoSelectableCollection, w.Kind(), w.ID())
}
