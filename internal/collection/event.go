// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collection

import "fmt"

// ChangeAction describes the kind of mutation carried by a [ChangeEvent].
type ChangeAction int

const (
	ActionAdd ChangeAction = iota
	ActionRemove
	ActionReplace
	ActionMove
	ActionReset
)

func (a ChangeAction) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionRemove:
		return "remove"
	case ActionReplace:
		return "replace"
	case ActionMove:
		return "move"
	case ActionReset:
		return "reset"
	default:
		return fmt.Sprintf("ChangeAction(%d)", int(a))
	}
}

// ChangeEvent describes a single committed mutation of a list.
//
// NewItems/NewStartingIndex are set for add, replace and move;
// OldItems/OldStartingIndex for remove, replace and move. Unused indices
// are -1. A reset carries the whole content of the list right after the
// change in NewItems; a cleared list reports none.
type ChangeEvent[T any] struct {
	Action           ChangeAction
	NewItems         []T
	NewStartingIndex int
	OldItems         []T
	OldStartingIndex int
}

func addedEvent[T any](index int, items ...T) ChangeEvent[T] {
	return ChangeEvent[T]{
		Action:           ActionAdd,
		NewItems:         items,
		NewStartingIndex: index,
		OldStartingIndex: -1,
	}
}

func removedEvent[T any](index int, items ...T) ChangeEvent[T] {
	return ChangeEvent[T]{
		Action:           ActionRemove,
		OldItems:         items,
		OldStartingIndex: index,
		NewStartingIndex: -1,
	}
}

func replacedEvent[T any](index int, oldItem, newItem T) ChangeEvent[T] {
	return ChangeEvent[T]{
		Action:           ActionReplace,
		NewItems:         []T{newItem},
		NewStartingIndex: index,
		OldItems:         []T{oldItem},
		OldStartingIndex: index,
	}
}

func movedEvent[T any](oldIndex, newIndex int, item T) ChangeEvent[T] {
	return ChangeEvent[T]{
		Action:           ActionMove,
		NewItems:         []T{item},
		NewStartingIndex: newIndex,
		OldItems:         []T{item},
		OldStartingIndex: oldIndex,
	}
}

func resetEvent[T any]() ChangeEvent[T] {
	return ChangeEvent[T]{
		Action:           ActionReset,
		NewStartingIndex: -1,
		OldStartingIndex: -1,
	}
}
