// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-selection-sync/internal/collection"
	"github.com/MKhiriev/go-selection-sync/internal/selection"
	"github.com/MKhiriev/go-selection-sync/internal/utils"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

// SelectionMode limits how many items a ListSelector may select.
type SelectionMode int

const (
	SelectMultiple SelectionMode = iota
	SelectSingle
)

const maxLabelWidth = 40

var selectorIDs = utils.NewUUIDGenerator("selector")

// ListSelectorOption configures a ListSelector.
type ListSelectorOption[T any] func(*ListSelector[T])

// WithSelectionMode sets single or multiple selection. Default is multiple.
func WithSelectionMode[T any](mode SelectionMode) ListSelectorOption[T] {
	return func(w *ListSelector[T]) {
		w.mode = mode
	}
}

// WithColumns renders the items in a grid and registers the widget as a
// multi selector.
func WithColumns[T any](columns int) ListSelectorOption[T] {
	return func(w *ListSelector[T]) {
		if columns > 1 {
			w.columns = columns
			w.kind = selection.KindMultiSelector
		}
	}
}

// WithFormat sets how items are labelled. Default is fmt.Sprint.
func WithFormat[T any](format func(T) string) ListSelectorOption[T] {
	return func(w *ListSelector[T]) {
		if format != nil {
			w.format = format
		}
	}
}

// ListSelector is a list widget whose selected items collection only admits
// members of its item source, each at most once.
type ListSelector[T any] struct {
	id      string
	kind    selection.Kind
	title   string
	source  []T
	mode    SelectionMode
	columns int
	format  func(T) string

	selected *collection.ObservableList[T]
	cursor   int
}

var _ selection.ItemsSelector[string] = (*ListSelector[string])(nil)

// NewListSelector creates a selector over a copy of source with nothing
// selected.
func NewListSelector[T any](title string, source []T, opts ...ListSelectorOption[T]) *ListSelector[T] {
	w := &ListSelector[T]{
		id:      selectorIDs.Generate(),
		kind:    selection.KindListSelector,
		title:   title,
		source:  slices.Clone(source),
		columns: 1,
		format:  func(v T) string { return fmt.Sprint(v) },
	}
	for _, opt := range opts {
		opt(w)
	}
	w.selected = collection.NewObservableList(collection.WithFilter[T](w.admits))

	return w
}

func (w *ListSelector[T]) ID() string           { return w.id }
func (w *ListSelector[T]) Kind() selection.Kind { return w.kind }
func (w *ListSelector[T]) Title() string        { return w.title }

// Items returns the item source.
func (w *ListSelector[T]) Items() []T {
	return slices.Clone(w.source)
}

// SelectedItems returns the widget's native selection collection.
func (w *ListSelector[T]) SelectedItems() *collection.ObservableList[T] {
	return w.selected
}

// Cursor returns the index of the highlighted item.
func (w *ListSelector[T]) Cursor() int {
	return w.cursor
}

// IsSelected reports whether the source item at index i is selected.
func (w *ListSelector[T]) IsSelected(i int) bool {
	if i < 0 || i >= len(w.source) {
		return false
	}
	return w.selected.Contains(w.source[i])
}

// Toggle flips the selection state of the source item at index i.
// In single mode selecting an item replaces the current selection.
func (w *ListSelector[T]) Toggle(i int) error {
	if i < 0 || i >= len(w.source) {
		return fmt.Errorf("toggle %d of %d items: %w", i, len(w.source), collection.ErrIndexOutOfRange)
	}

	if idx := w.selected.IndexOf(w.source[i]); idx >= 0 {
		return w.selected.RemoveAt(idx)
	}
	if w.mode == SelectSingle {
		return w.SelectIndex(i)
	}
	return w.selected.Append(w.source[i])
}

// SelectIndex makes the source item at index i the only selected item.
func (w *ListSelector[T]) SelectIndex(i int) error {
	if i < 0 || i >= len(w.source) {
		return fmt.Errorf("select %d of %d items: %w", i, len(w.source), collection.ErrIndexOutOfRange)
	}
	if err := w.selected.Clear(); err != nil {
		return err
	}
	return w.selected.Append(w.source[i])
}

// SelectAll selects every source item that is not selected yet, as one
// change. It does nothing in single mode.
func (w *ListSelector[T]) SelectAll() error {
	if w.mode == SelectSingle {
		return nil
	}
	return w.selected.AddRange(w.source...)
}

// UnselectAll clears the selection.
func (w *ListSelector[T]) UnselectAll() error {
	return w.selected.Clear()
}

func (w *ListSelector[T]) admits(current []T, item T) bool {
	if !slices.ContainsFunc(w.source, func(s T) bool { return cmp.Equal(s, item) }) {
		return false
	}
	if slices.ContainsFunc(current, func(c T) bool { return cmp.Equal(c, item) }) {
		return false
	}
	return w.mode != SelectSingle || len(current) == 0
}

// Update handles navigation and selection keys.
func (w *ListSelector[T]) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(w.source) == 0 {
		return nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		w.moveCursor(-w.columns)
	case key.Matches(keyMsg, keys.down):
		w.moveCursor(w.columns)
	case key.Matches(keyMsg, keys.left) && w.columns > 1:
		w.moveCursor(-1)
	case key.Matches(keyMsg, keys.right) && w.columns > 1:
		w.moveCursor(1)
	case key.Matches(keyMsg, keys.toggle):
		return errCmd(w.Toggle(w.cursor))
	case key.Matches(keyMsg, keys.selectAll):
		return errCmd(w.SelectAll())
	}

	return nil
}

func (w *ListSelector[T]) moveCursor(delta int) {
	next := w.cursor + delta
	if next < 0 || next >= len(w.source) {
		return
	}
	w.cursor = next
}

func (w *ListSelector[T]) View() string {
	if len(w.source) == 0 {
		return "No items\n"
	}

	var b strings.Builder
	for i, item := range w.source {
		cursor := "  "
		if i == w.cursor {
			cursor = "> "
		}
		mark := "[ ]"
		label := fitText(w.format(item), maxLabelWidth)
		if w.IsSelected(i) {
			mark = "[x]"
			label = selectedStyle.Render(label)
		}

		cell := cursor + mark + " " + label
		b.WriteString(cell)
		if (i+1)%w.columns == 0 || i == len(w.source)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString(strings.Repeat(" ", max(2, maxLabelWidth/2-len(w.format(item)))))
		}
	}

	fmt.Fprintf(&b, "\n%d of %d selected\n", w.selected.Len(), len(w.source))
	return b.String()
}
