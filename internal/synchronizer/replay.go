// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synchronizer

import (
	"fmt"

	"github.com/MKhiriev/go-selection-sync/internal/collection"
)

// replay applies an add, remove, replace or move event from a source list
// onto dest. Replace and move are applied as a remove followed by an add.
func replay[S, D any](dest collection.List[D], e collection.ChangeEvent[S], convert func(S) (D, error)) error {
	switch e.Action {
	case collection.ActionAdd:
		return addItems(dest, e, convert)
	case collection.ActionRemove:
		return removeItems(dest, e)
	case collection.ActionReplace, collection.ActionMove:
		if err := removeItems(dest, e); err != nil {
			return err
		}
		return addItems(dest, e, convert)
	default:
		return fmt.Errorf("%w: cannot replay %s", ErrUnhandledAction, e.Action)
	}
}

// addItems inserts the converted new items at the event's starting index.
// A point past the end of dest, possible after dest rejected earlier
// elements, falls back to an append.
func addItems[S, D any](dest collection.List[D], e collection.ChangeEvent[S], convert func(S) (D, error)) error {
	for i, item := range e.NewItems {
		v, err := convert(item)
		if err != nil {
			return err
		}

		point := e.NewStartingIndex + i
		if point > dest.Len() {
			err = dest.Append(v)
		} else {
			err = dest.Insert(point, v)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// removeItems removes len(OldItems) elements at the old starting index;
// each removal shifts the following elements down into that slot.
func removeItems[S, D any](dest collection.List[D], e collection.ChangeEvent[S]) error {
	for range e.OldItems {
		if err := dest.RemoveAt(e.OldStartingIndex); err != nil {
			return err
		}
	}

	return nil
}

// convertAll converts every element of items, stopping at the first failure.
func convertAll[S, D any](items []S, convert func(S) (D, error)) ([]D, error) {
	out := make([]D, 0, len(items))
	for _, item := range items {
		v, err := convert(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// fill replaces the content of dest with items.
func fill[D any](dest collection.List[D], items []D) error {
	if err := dest.Clear(); err != nil {
		return err
	}

	for _, item := range items {
		if err := dest.Append(item); err != nil {
			return err
		}
	}

	return nil
}
