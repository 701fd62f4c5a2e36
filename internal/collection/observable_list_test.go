// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collection

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects every event delivered to it.
type recorder[T any] struct {
	mu     sync.Mutex
	events []ChangeEvent[T]
}

func (r *recorder[T]) handle(e ChangeEvent[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder[T]) last(t *testing.T) ChangeEvent[T] {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.events)
	return r.events[len(r.events)-1]
}

func newRecordedList(items ...string) (*ObservableList[string], *recorder[string]) {
	l := NewObservableList(WithItems(items...))
	rec := &recorder[string]{}
	l.Subscribe(rec.handle)
	return l, rec
}

// ── ChangeAction ─────────────────────────────────────────────────────────────

func TestChangeAction_String(t *testing.T) {
	assert.Equal(t, "add", ActionAdd.String())
	assert.Equal(t, "remove", ActionRemove.String())
	assert.Equal(t, "replace", ActionReplace.String())
	assert.Equal(t, "move", ActionMove.String())
	assert.Equal(t, "reset", ActionReset.String())
	assert.Equal(t, "ChangeAction(42)", ChangeAction(42).String())
}

// ── mutations and events ─────────────────────────────────────────────────────

func TestObservableList_WithItems_NoEvents(t *testing.T) {
	l, rec := newRecordedList("a", "b")
	assert.Equal(t, []string{"a", "b"}, l.Items())
	assert.Empty(t, rec.events)
}

func TestObservableList_Append(t *testing.T) {
	l, rec := newRecordedList("a")

	require.NoError(t, l.Append("b"))

	assert.Equal(t, []string{"a", "b"}, l.Items())
	e := rec.last(t)
	assert.Equal(t, ActionAdd, e.Action)
	assert.Equal(t, 1, e.NewStartingIndex)
	assert.Equal(t, []string{"b"}, e.NewItems)
	assert.Equal(t, -1, e.OldStartingIndex)
}

func TestObservableList_Insert(t *testing.T) {
	l, rec := newRecordedList("a", "b")

	require.NoError(t, l.Insert(0, "x"))

	assert.Equal(t, []string{"x", "a", "b"}, l.Items())
	e := rec.last(t)
	assert.Equal(t, ActionAdd, e.Action)
	assert.Equal(t, 0, e.NewStartingIndex)
}

func TestObservableList_Insert_AtEnd(t *testing.T) {
	l, _ := newRecordedList("a")
	require.NoError(t, l.Insert(1, "b"))
	assert.Equal(t, []string{"a", "b"}, l.Items())
}

func TestObservableList_Insert_OutOfRange(t *testing.T) {
	l, rec := newRecordedList("a")

	err := l.Insert(5, "x")

	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Empty(t, rec.events)
	assert.Equal(t, []string{"a"}, l.Items())
}

func TestObservableList_AddRange_SingleEvent(t *testing.T) {
	l, rec := newRecordedList("a")

	require.NoError(t, l.AddRange("b", "c"))

	require.Len(t, rec.events, 1)
	e := rec.last(t)
	assert.Equal(t, ActionAdd, e.Action)
	assert.Equal(t, 1, e.NewStartingIndex)
	assert.Equal(t, []string{"b", "c"}, e.NewItems)
}

func TestObservableList_AddRange_Empty_NoEvent(t *testing.T) {
	l, rec := newRecordedList()
	require.NoError(t, l.AddRange())
	assert.Empty(t, rec.events)
}

func TestObservableList_RemoveAt(t *testing.T) {
	l, rec := newRecordedList("a", "b", "c")

	require.NoError(t, l.RemoveAt(1))

	assert.Equal(t, []string{"a", "c"}, l.Items())
	e := rec.last(t)
	assert.Equal(t, ActionRemove, e.Action)
	assert.Equal(t, 1, e.OldStartingIndex)
	assert.Equal(t, []string{"b"}, e.OldItems)
}

func TestObservableList_RemoveAt_OutOfRange(t *testing.T) {
	l, _ := newRecordedList("a")
	assert.ErrorIs(t, l.RemoveAt(1), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.RemoveAt(-1), ErrIndexOutOfRange)
}

func TestObservableList_RemoveRange(t *testing.T) {
	l, rec := newRecordedList("a", "b", "c", "d")

	require.NoError(t, l.RemoveRange(1, 2))

	assert.Equal(t, []string{"a", "d"}, l.Items())
	require.Len(t, rec.events, 1)
	assert.Equal(t, []string{"b", "c"}, rec.last(t).OldItems)
}

func TestObservableList_RemoveRange_NegativeCount(t *testing.T) {
	l, _ := newRecordedList("a")
	assert.ErrorIs(t, l.RemoveRange(0, -1), ErrNegativeCount)
}

func TestObservableList_Remove(t *testing.T) {
	l, rec := newRecordedList("a", "b")

	removed, err := l.Remove("a")

	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []string{"b"}, l.Items())
	assert.Equal(t, 0, rec.last(t).OldStartingIndex)
}

func TestObservableList_Remove_Missing(t *testing.T) {
	l, rec := newRecordedList("a")

	removed, err := l.Remove("zzz")

	require.NoError(t, err)
	assert.False(t, removed)
	assert.Empty(t, rec.events)
}

func TestObservableList_Set(t *testing.T) {
	l, rec := newRecordedList("a", "b")

	require.NoError(t, l.Set(0, "Replaced"))

	assert.Equal(t, []string{"Replaced", "b"}, l.Items())
	e := rec.last(t)
	assert.Equal(t, ActionReplace, e.Action)
	assert.Equal(t, []string{"a"}, e.OldItems)
	assert.Equal(t, []string{"Replaced"}, e.NewItems)
	assert.Equal(t, 0, e.OldStartingIndex)
	assert.Equal(t, 0, e.NewStartingIndex)
}

func TestObservableList_Move(t *testing.T) {
	l, rec := newRecordedList("a", "b", "c")

	require.NoError(t, l.Move(0, 2))

	assert.Equal(t, []string{"b", "c", "a"}, l.Items())
	e := rec.last(t)
	assert.Equal(t, ActionMove, e.Action)
	assert.Equal(t, 0, e.OldStartingIndex)
	assert.Equal(t, 2, e.NewStartingIndex)
	assert.Equal(t, []string{"a"}, e.NewItems)
}

func TestObservableList_Move_OutOfRange(t *testing.T) {
	l, _ := newRecordedList("a", "b")
	assert.ErrorIs(t, l.Move(0, 2), ErrIndexOutOfRange)
}

func TestObservableList_Clear(t *testing.T) {
	l, rec := newRecordedList("a", "b")

	require.NoError(t, l.Clear())

	assert.Zero(t, l.Len())
	assert.Equal(t, ActionReset, rec.last(t).Action)
}

// ── filter ───────────────────────────────────────────────────────────────────

func TestObservableList_Filter_DropsRejected(t *testing.T) {
	source := []string{"a", "b"}
	l := NewObservableList(WithFilter[string](func(_ []string, item string) bool {
		for _, s := range source {
			if s == item {
				return true
			}
		}
		return false
	}))
	rec := &recorder[string]{}
	l.Subscribe(rec.handle)

	require.NoError(t, l.Append("a"))
	require.NoError(t, l.Append("nope"))
	require.NoError(t, l.Insert(0, "nope"))
	require.NoError(t, l.AddRange("b", "nope"))

	assert.Equal(t, []string{"a", "b"}, l.Items())
	require.Len(t, rec.events, 2)
	assert.Equal(t, []string{"b"}, rec.last(t).NewItems)
}

func TestObservableList_Filter_SetSeesOtherItems(t *testing.T) {
	unique := WithFilter[string](func(current []string, item string) bool {
		for _, c := range current {
			if c == item {
				return false
			}
		}
		return true
	})
	l := NewObservableList(unique, WithItems("a", "b"))

	require.NoError(t, l.Set(0, "a"))
	assert.Equal(t, []string{"a", "b"}, l.Items())

	require.NoError(t, l.Set(0, "b"))
	assert.Equal(t, []string{"a", "b"}, l.Items(), "duplicate must be rejected")
}

// ── subscriptions ────────────────────────────────────────────────────────────

func TestObservableList_Unsubscribe(t *testing.T) {
	l := NewObservableList[string]()
	rec := &recorder[string]{}
	sub := l.Subscribe(rec.handle)

	l.Unsubscribe(sub)
	require.NoError(t, l.Append("a"))

	assert.Empty(t, rec.events)
}

func TestObservableList_Unsubscribe_UnknownIsNoop(t *testing.T) {
	l := NewObservableList[string]()
	assert.NotPanics(t, func() { l.Unsubscribe(Subscription{}) })
}

func TestObservableList_HandlerErrorsAreJoined(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	l := NewObservableList[string]()
	l.Subscribe(func(ChangeEvent[string]) error { return errA })
	l.Subscribe(func(ChangeEvent[string]) error { return nil })
	l.Subscribe(func(ChangeEvent[string]) error { return errB })

	err := l.Append("x")

	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Equal(t, []string{"x"}, l.Items(), "mutation is committed before handlers run")
}

func TestObservableList_HandlerMayReadList(t *testing.T) {
	l := NewObservableList[string]()
	var seen []string
	l.Subscribe(func(ChangeEvent[string]) error {
		seen = l.Items()
		return nil
	})

	require.NoError(t, l.Append("a"))

	assert.Equal(t, []string{"a"}, seen)
}

func TestObservableList_ConcurrentAppend(t *testing.T) {
	l := NewObservableList[int]()
	var (
		mu    sync.Mutex
		count int
	)
	l.Subscribe(func(ChangeEvent[int]) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Append(i)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, l.Len())
	assert.Equal(t, 50, count)
}

func TestObservableList_NestedMutation_DeliveredInCommitOrder(t *testing.T) {
	l := NewObservableList[string]()
	inserted := false
	l.Subscribe(func(e ChangeEvent[string]) error {
		if inserted {
			return nil
		}
		inserted = true
		return l.Insert(0, "b")
	})
	rec := &recorder[string]{}
	l.Subscribe(rec.handle)

	require.NoError(t, l.Append("a"))

	require.Len(t, rec.events, 2)
	assert.Equal(t, addedEvent(0, "a"), rec.events[0])
	assert.Equal(t, addedEvent(0, "b"), rec.events[1])
	assert.Equal(t, []string{"b", "a"}, l.Items())
}

func TestObservableList_NestedMutation_ErrorsReachOuterCall(t *testing.T) {
	boom := errors.New("boom")
	l := NewObservableList[string]()
	l.Subscribe(func(e ChangeEvent[string]) error {
		if e.NewItems[0] == "a" {
			return l.Append("b")
		}
		return boom
	})

	err := l.Append("a")

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b"}, l.Items())
}

func TestObservableList_Without(t *testing.T) {
	l := NewObservableList[string]()
	muted := &recorder[string]{}
	sub := l.Subscribe(muted.handle)
	others := &recorder[string]{}
	l.Subscribe(others.handle)

	view := l.Without(sub)
	require.NoError(t, view.Append("a"))
	require.NoError(t, view.Insert(0, "b"))
	require.NoError(t, view.RemoveAt(1))
	require.NoError(t, view.Clear())

	assert.Empty(t, muted.events)
	assert.Len(t, others.events, 4)

	require.NoError(t, l.Append("c"))
	assert.Len(t, muted.events, 1)
}

func TestObservableList_Without_NestedChangesStillReported(t *testing.T) {
	l := NewObservableList[string]()
	muted := &recorder[string]{}
	sub := l.Subscribe(muted.handle)
	l.Subscribe(func(e ChangeEvent[string]) error {
		if e.Action == ActionAdd && e.NewItems[0] == "a" {
			return l.Append("b")
		}
		return nil
	})

	require.NoError(t, l.Without(sub).Append("a"))

	require.Len(t, muted.events, 1)
	assert.Equal(t, addedEvent(1, "b"), muted.events[0])
}

func TestIsNil(t *testing.T) {
	var observable *ObservableList[string]
	var plain *PlainList[string]

	assert.True(t, IsNil[string](nil))
	assert.True(t, IsNil[string](observable))
	assert.True(t, IsNil[string](plain))
	assert.False(t, IsNil[string](NewObservableList[string]()))
	assert.False(t, IsNil[string](NewPlainList[string]()))
}

// ── PlainList ────────────────────────────────────────────────────────────────

func TestPlainList(t *testing.T) {
	l := NewPlainList("a", "b")

	require.NoError(t, l.Insert(0, "x"))
	require.NoError(t, l.Append("y"))
	require.NoError(t, l.RemoveAt(1))
	assert.Equal(t, []string{"x", "b", "y"}, l.Items())
	assert.Equal(t, "b", l.At(1))
	assert.Equal(t, 3, l.Len())

	assert.ErrorIs(t, l.Insert(9, "z"), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.RemoveAt(3), ErrIndexOutOfRange)

	require.NoError(t, l.Clear())
	assert.Zero(t, l.Len())
}

func TestPlainList_CopiesInput(t *testing.T) {
	src := []string{"a"}
	l := NewPlainList(src...)
	src[0] = "changed"
	assert.Equal(t, "a", l.At(0))
}
