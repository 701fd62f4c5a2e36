// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package demo

import (
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-selection-sync/internal/collection"
	"github.com/MKhiriev/go-selection-sync/internal/logger"
)

// Selection is a view-model with a fixed set of available items and an
// observable list of the selected ones.
type Selection[T any] struct {
	noun      string
	available []T
	selected  *collection.ObservableList[T]
	log       *logger.Logger

	mu      sync.RWMutex
	summary string
}

// NewSelection creates a view-model over a copy of available with nothing
// selected. noun names the items in the summary.
func NewSelection[T any](noun string, available []T, log *logger.Logger) *Selection[T] {
	if log == nil {
		log = logger.Nop()
	}
	vm := &Selection[T]{
		noun:      noun,
		available: slices.Clone(available),
		selected:  collection.NewObservableList[T](),
		log:       log.Component("viewmodel"),
	}
	vm.summary = vm.format(0)
	vm.selected.Subscribe(vm.onSelectedChanged)

	return vm
}

// Available returns the items that can be selected.
func (vm *Selection[T]) Available() []T {
	return slices.Clone(vm.available)
}

// Selected returns the live list of selected items.
func (vm *Selection[T]) Selected() *collection.ObservableList[T] {
	return vm.selected
}

// Strings returns the selected items formatted with fmt.Sprint.
func (vm *Selection[T]) Strings() []string {
	items := vm.selected.Items()
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = fmt.Sprint(item)
	}
	return out
}

// Summary describes how many items are selected. It is recomputed on every
// change of the selected list.
func (vm *Selection[T]) Summary() string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.summary
}

// SelectAll clears the selection and then adds every available item one
// by one. A view-model without available items is left untouched.
func (vm *Selection[T]) SelectAll() error {
	if len(vm.available) == 0 {
		return nil
	}
	if err := vm.selected.Clear(); err != nil {
		return fmt.Errorf("select all: %w", err)
	}
	for _, item := range vm.available {
		if err := vm.selected.Append(item); err != nil {
			return fmt.Errorf("select all: %w", err)
		}
	}
	return nil
}

// ClearSelection removes every selected item.
func (vm *Selection[T]) ClearSelection() error {
	if err := vm.selected.Clear(); err != nil {
		return fmt.Errorf("clear selection: %w", err)
	}
	return nil
}

func (vm *Selection[T]) onSelectedChanged(e collection.ChangeEvent[T]) error {
	summary := vm.format(vm.selected.Len())

	vm.mu.Lock()
	vm.summary = summary
	vm.mu.Unlock()

	vm.log.Debug().
		Stringer("action", e.Action).
		Stringer("selected", logger.Stringer(vm.selected.Items())).
		Msg(summary)
	return nil
}

func (vm *Selection[T]) format(n int) string {
	return fmt.Sprintf("%d %s are selected.", n, vm.noun)
}
