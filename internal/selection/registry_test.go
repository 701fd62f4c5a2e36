// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package selection

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-selection-sync/internal/collection"
	"github.com/MKhiriev/go-selection-sync/internal/logger"
	"github.com/MKhiriev/go-selection-sync/internal/mock"
	"github.com/MKhiriev/go-selection-sync/internal/synchronizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Attach ───────────────────────────────────────────────────────────────────

func TestAttach_SynchronizesSelection(t *testing.T) {
	r := NewRegistry(logger.Nop())
	w := newFakeSelector("names", "Abraham", "George", "James")
	selectedNames := collection.NewObservableList[string]()

	require.NoError(t, Attach[string](r, w, selectedNames))
	assert.Equal(t, 1, r.Len())

	require.NoError(t, w.selected.Append("George"))
	assert.Equal(t, []string{"George"}, selectedNames.Items())

	require.NoError(t, selectedNames.Append("James"))
	assert.Equal(t, []string{"George", "James"}, w.selected.Items())
}

func TestAttach_TargetConstrainedBySource(t *testing.T) {
	r := NewRegistry(nil)
	w := newFakeSelector("names", "Abraham", "George")
	selectedNames := collection.NewObservableList[string]()

	require.NoError(t, Attach[string](r, w, selectedNames))

	// The widget selection is the master: its item source rejects "Nobody",
	// so the view-model list keeps the element but the widget does not.
	require.NoError(t, selectedNames.Append("Nobody"))
	assert.Empty(t, w.selected.Items())
	assert.Equal(t, []string{"Nobody"}, selectedNames.Items())
}

func TestAttach_InitialSelectionFromWidget(t *testing.T) {
	r := NewRegistry(nil)
	w := newFakeSelector("names", "a", "b")
	require.NoError(t, w.selected.Append("b"))
	selectedNames := collection.NewObservableList(collection.WithItems("stale"))

	require.NoError(t, Attach[string](r, w, selectedNames))

	assert.Equal(t, []string{"b"}, selectedNames.Items())
}

func TestAttach_ReplacesPreviousBinding(t *testing.T) {
	r := NewRegistry(nil)
	w := newFakeSelector("names", "a", "b")
	first := collection.NewObservableList[string]()
	second := collection.NewObservableList[string]()

	require.NoError(t, Attach[string](r, w, first))
	require.NoError(t, Attach[string](r, w, second))
	require.NoError(t, w.selected.Append("a"))

	assert.Empty(t, first.Items(), "the first binding must be stopped")
	assert.Equal(t, []string{"a"}, second.Items())
	assert.Equal(t, 1, r.Len())
}

func TestAttach_NilTargetClearsBinding(t *testing.T) {
	r := NewRegistry(nil)
	w := newFakeSelector("names", "a")
	list := collection.NewObservableList[string]()
	require.NoError(t, Attach[string](r, w, list))

	require.NoError(t, Attach[string](r, w, nil))
	require.NoError(t, w.selected.Append("a"))

	assert.Zero(t, r.Len())
	assert.Empty(t, list.Items())
}

func TestAttach_TypedNilTargetClearsBinding(t *testing.T) {
	r := NewRegistry(nil)
	w := newFakeSelector("names", "a")
	require.NoError(t, Attach[string](r, w, collection.NewObservableList[string]()))

	var target *collection.ObservableList[string]
	require.NoError(t, Attach[string](r, w, target))

	assert.Zero(t, r.Len())
	assert.NotPanics(t, func() { _ = w.selected.Append("a") })
}

func TestAttach_WidgetWithoutSelection(t *testing.T) {
	r := NewRegistry(nil)

	err := Attach[string](r, fakePlain{id: "label"}, collection.NewObservableList[string]())

	require.ErrorIs(t, err, ErrNoSelectableCollection)
	assert.Zero(t, r.Len())
}

func TestAttach_NilWidget(t *testing.T) {
	err := Attach[string](NewRegistry(nil), nil, collection.NewObservableList[string]())
	assert.ErrorIs(t, err, ErrNilWidget)
}

func TestAttachWithConverter_Calendar(t *testing.T) {
	r := NewRegistry(nil)
	w := &fakeCalendar{id: "cal", dates: collection.NewObservableList[time.Time]()}
	days := collection.NewObservableList[string]()
	conv := synchronizer.ConverterFuncs[time.Time, string]{
		Forward: func(d time.Time) (string, error) { return d.Format(time.DateOnly), nil },
		Backward: func(s string) (time.Time, error) {
			return time.Parse(time.DateOnly, s)
		},
	}

	require.NoError(t, AttachWithConverter[time.Time, string](r, w, days, conv))
	require.NoError(t, w.dates.Append(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, []string{"2026-10-15"}, days.Items())

	err := days.Append("not a date")
	assert.ErrorIs(t, err, synchronizer.ErrConversion)
}

// ── Detach / Close (mocked managers) ─────────────────────────────────────────

func TestDetach_StopsManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockManager(ctrl)
	r := NewRegistry(nil)
	w := fakePlain{id: "w1"}

	gomock.InOrder(
		m.EXPECT().StartSynchronizing().Return(nil),
		m.EXPECT().StopSynchronizing(),
	)

	require.NoError(t, r.start(w.ID(), m))
	got, ok := r.Manager(w)
	require.True(t, ok)
	assert.Same(t, m, got)

	r.Detach(w)

	_, ok = r.Manager(w)
	assert.False(t, ok)
}

func TestDetach_Unknown_NoPanic(t *testing.T) {
	r := NewRegistry(nil)
	assert.NotPanics(t, func() {
		r.Detach(fakePlain{id: "never"})
		r.Detach(nil)
	})
}

func TestStart_FailureNotRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockManager(ctrl)
	r := NewRegistry(nil)
	boom := errors.New("boom")

	m.EXPECT().StartSynchronizing().Return(boom)

	err := r.start("w1", m)

	require.ErrorIs(t, err, boom)
	assert.Zero(t, r.Len())
}

func TestClose_StopsAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := NewRegistry(nil)

	for _, id := range []string{"a", "b", "c"} {
		m := mock.NewMockManager(ctrl)
		m.EXPECT().StartSynchronizing().Return(nil)
		m.EXPECT().StopSynchronizing().Times(1)
		require.NoError(t, r.start(id, m))
	}

	r.Close()

	assert.Zero(t, r.Len())
}
