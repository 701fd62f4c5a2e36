// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synchronizer

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-selection-sync/internal/collection"
	"github.com/MKhiriev/go-selection-sync/internal/logger"
	"github.com/google/go-cmp/cmp"
)

// Option configures a [TwoListSynchronizer].
type Option[M, T any] func(*TwoListSynchronizer[M, T])

// WithLogger sets the logger used for debug traces of replayed changes.
func WithLogger[M, T any](log *logger.Logger) Option[M, T] {
	return func(s *TwoListSynchronizer[M, T]) {
		if log != nil {
			s.log = log
		}
	}
}

// WithEqual replaces the element equality used by the reconciliation check.
// The default is cmp.Equal.
func WithEqual[M, T any](equal func(a, b M) bool) Option[M, T] {
	return func(s *TwoListSynchronizer[M, T]) {
		if equal != nil {
			s.equal = equal
		}
	}
}

// TwoListSynchronizer keeps a master list and a target list mirrored.
//
// A new synchronizer is inert: it does not touch either list until
// StartSynchronizing is called.
//
// Changes are applied one at a time, in the order their events arrive, by
// whichever goroutine holds the synchronizer's lock. An event raised while
// a change is being applied, for instance by another subscriber writing
// back into the list that is being replayed from, is queued and applied
// after the current one instead of waiting for the lock. The call that
// raised it then returns before it is mirrored.
//
// Lists that do not implement [collection.Observable] are accepted; they are
// aligned on start and on resets from the other side but never originate
// changes.
type TwoListSynchronizer[M, T any] struct {
	// mu is held while changes are applied; queueMu guards queue and
	// applying.
	mu       sync.Mutex
	queueMu  sync.Mutex
	queue    []func() error
	applying bool

	master    collection.List[M]
	target    collection.List[T]
	converter ItemConverter[M, T]
	equal     func(a, b M) bool
	log       *logger.Logger

	active    atomic.Bool
	masterSub *collection.Subscription
	targetSub *collection.Subscription

	// settled is what the last reconciliation copy left behind when master
	// could not take all of the target.
	settled *settledContent[M]
}

type settledContent[M any] struct {
	master []M
	target []M
}

var _ Manager = (*TwoListSynchronizer[string, string])(nil)

// New creates an inert synchronizer for master and target.
//
// A nil converter is accepted only when M and T are the same type, in which
// case [Identity] is used.
func New[M, T any](master collection.List[M], target collection.List[T], converter ItemConverter[M, T], opts ...Option[M, T]) (*TwoListSynchronizer[M, T], error) {
	if collection.IsNil(master) || collection.IsNil(target) {
		return nil, ErrNilList
	}

	if converter == nil {
		c, ok := any(identityConverter[M]{}).(ItemConverter[M, T])
		if !ok {
			return nil, ErrNilConverter
		}
		converter = c
	}

	s := &TwoListSynchronizer[M, T]{
		master:    master,
		target:    target,
		converter: converter,
		equal:     func(a, b M) bool { return cmp.Equal(a, b) },
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// NewIdentity creates an inert synchronizer for two lists of the same
// element type.
func NewIdentity[T any](master, target collection.List[T], opts ...Option[T, T]) (*TwoListSynchronizer[T, T], error) {
	return New[T, T](master, target, Identity[T](), opts...)
}

// StartSynchronizing subscribes to both lists, replaces the target content
// with the converted master content and then runs the reconciliation check:
// when the target did not keep exactly what it was given (it may reject
// elements), the master is overwritten from the target.
//
// Starting an already active synchronizer drops its subscriptions first and
// repeats the full start. On error the synchronizer is left inert.
func (s *TwoListSynchronizer[M, T]) StartSynchronizing() error {
	return s.exclusive(s.start)
}

func (s *TwoListSynchronizer[M, T]) start() error {
	s.stopListening()

	s.listenMaster()
	s.listenTarget()
	s.active.Store(true)
	s.settled = nil

	if err := s.copyMasterToTarget(); err != nil {
		s.abort()
		return fmt.Errorf("copy master to target: %w", err)
	}

	if err := s.applyQueued(false); err != nil {
		s.abort()
		return err
	}

	if err := s.reconcile(); err != nil {
		s.abort()
		return err
	}

	s.log.Debug().
		Int("master_len", s.master.Len()).
		Int("target_len", s.target.Len()).
		Msg("synchronization started")

	return nil
}

// StopSynchronizing unsubscribes from both lists. Their content is kept.
func (s *TwoListSynchronizer[M, T]) StopSynchronizing() {
	_ = s.exclusive(func() error {
		s.stopListening()
		s.active.Store(false)
		s.log.Debug().Msg("synchronization stopped")
		return nil
	})
}

// IsSynchronizing reports whether the synchronizer is active.
func (s *TwoListSynchronizer[M, T]) IsSynchronizing() bool {
	return s.active.Load()
}

// Reconcile compares master with the target mapped back through the
// converter and, if they differ, overwrites master from target. Running it
// again without intervening changes does nothing, even when master rejects
// part of the target.
func (s *TwoListSynchronizer[M, T]) Reconcile() error {
	return s.exclusive(s.reconcile)
}

func (s *TwoListSynchronizer[M, T]) reconcile() error {
	back, err := convertAll(s.target.Items(), s.toMaster)
	if err != nil {
		return fmt.Errorf("compare lists: %w", err)
	}

	masterItems := s.master.Items()
	if slices.EqualFunc(masterItems, back, s.equal) {
		s.settled = nil
		return nil
	}
	if s.settled != nil &&
		slices.EqualFunc(masterItems, s.settled.master, s.equal) &&
		slices.EqualFunc(back, s.settled.target, s.equal) {
		return nil
	}

	s.log.Debug().Msg("target rejected master content, copying target to master")
	if err = fill(s.masterView(), back); err != nil {
		return fmt.Errorf("copy target to master: %w", err)
	}
	s.settled = &settledContent[M]{master: s.master.Items(), target: back}

	return nil
}

func (s *TwoListSynchronizer[M, T]) onMasterChanged(e collection.ChangeEvent[M]) error {
	return s.enqueue(func() error { return s.applyMasterChange(e) })
}

func (s *TwoListSynchronizer[M, T]) onTargetChanged(e collection.ChangeEvent[T]) error {
	return s.enqueue(func() error { return s.applyTargetChange(e) })
}

func (s *TwoListSynchronizer[M, T]) applyMasterChange(e collection.ChangeEvent[M]) error {
	if !s.active.Load() {
		return nil
	}
	s.trace("master", e.Action, len(e.NewItems), len(e.OldItems))

	switch e.Action {
	case collection.ActionAdd, collection.ActionRemove, collection.ActionReplace, collection.ActionMove:
		return replay(s.targetView(), e, s.toTarget)
	case collection.ActionReset:
		items, err := convertAll(e.NewItems, s.toTarget)
		if err != nil {
			return err
		}
		return fill(s.targetView(), items)
	default:
		return fmt.Errorf("%w: %s", ErrUnhandledAction, e.Action)
	}
}

func (s *TwoListSynchronizer[M, T]) applyTargetChange(e collection.ChangeEvent[T]) error {
	if !s.active.Load() {
		return nil
	}
	s.trace("target", e.Action, len(e.NewItems), len(e.OldItems))

	switch e.Action {
	case collection.ActionAdd, collection.ActionRemove, collection.ActionReplace, collection.ActionMove:
		return replay(s.masterView(), e, s.toMaster)
	case collection.ActionReset:
		items, err := convertAll(e.NewItems, s.toMaster)
		if err != nil {
			return err
		}
		return fill(s.masterView(), items)
	default:
		return fmt.Errorf("%w: %s", ErrUnhandledAction, e.Action)
	}
}

// enqueue queues apply. If no goroutine is applying changes it takes the
// lock and applies the queue itself.
func (s *TwoListSynchronizer[M, T]) enqueue(apply func() error) error {
	s.queueMu.Lock()
	s.queue = append(s.queue, apply)
	busy := s.applying
	s.queueMu.Unlock()

	if busy {
		return nil
	}
	return s.exclusive(func() error { return nil })
}

// exclusive runs op under the lock and then applies everything queued
// meanwhile. Events raised on this goroutine during op are only queued.
func (s *TwoListSynchronizer[M, T]) exclusive(op func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queueMu.Lock()
	s.applying = true
	s.queueMu.Unlock()
	defer func() {
		s.queueMu.Lock()
		s.applying = false
		s.queueMu.Unlock()
	}()

	err := op()
	return errors.Join(err, s.applyQueued(true))
}

// applyQueued applies queued changes in order until the queue is empty.
// With release set, the applying mark is cleared together with the final
// empty check so that no event is left behind.
func (s *TwoListSynchronizer[M, T]) applyQueued(release bool) error {
	var errs []error
	for {
		s.queueMu.Lock()
		if len(s.queue) == 0 {
			s.queue = nil
			if release {
				s.applying = false
			}
			s.queueMu.Unlock()
			return errors.Join(errs...)
		}
		apply := s.queue[0]
		s.queue = s.queue[1:]
		s.queueMu.Unlock()

		if err := apply(); err != nil {
			errs = append(errs, err)
		}
	}
}

func (s *TwoListSynchronizer[M, T]) trace(source string, action collection.ChangeAction, added, removed int) {
	s.log.Debug().
		Str("source", source).
		Stringer("action", action).
		Int("added", added).
		Int("removed", removed).
		Msg("replaying change")
}

func (s *TwoListSynchronizer[M, T]) copyMasterToTarget() error {
	items, err := convertAll(s.master.Items(), s.toTarget)
	if err != nil {
		return err
	}
	return fill(s.targetView(), items)
}

func (s *TwoListSynchronizer[M, T]) toTarget(v M) (T, error) {
	t, err := s.converter.Convert(v)
	if err != nil {
		return t, fmt.Errorf("%w: %w", ErrConversion, err)
	}
	return t, nil
}

func (s *TwoListSynchronizer[M, T]) toMaster(v T) (M, error) {
	m, err := s.converter.ConvertBack(v)
	if err != nil {
		return m, fmt.Errorf("%w: %w", ErrConversion, err)
	}
	return m, nil
}

// masterView is master as written by replays: its changes are not reported
// back to this synchronizer.
func (s *TwoListSynchronizer[M, T]) masterView() collection.List[M] {
	return muted(s.master, s.masterSub)
}

func (s *TwoListSynchronizer[M, T]) targetView() collection.List[T] {
	return muted(s.target, s.targetSub)
}

func (s *TwoListSynchronizer[M, T]) listenMaster() {
	s.masterSub = subscribe(s.master, s.onMasterChanged)
}

func (s *TwoListSynchronizer[M, T]) listenTarget() {
	s.targetSub = subscribe(s.target, s.onTargetChanged)
}

func (s *TwoListSynchronizer[M, T]) stopListening() {
	unsubscribe(s.master, &s.masterSub)
	unsubscribe(s.target, &s.targetSub)
}

func (s *TwoListSynchronizer[M, T]) abort() {
	s.stopListening()
	s.active.Store(false)
}

func subscribe[E any](l collection.List[E], h collection.Handler[E]) *collection.Subscription {
	o, ok := l.(collection.Observable[E])
	if !ok {
		return nil
	}
	sub := o.Subscribe(h)
	return &sub
}

func unsubscribe[E any](l collection.List[E], sub **collection.Subscription) {
	if *sub == nil {
		return
	}
	if o, ok := l.(collection.Observable[E]); ok {
		o.Unsubscribe(**sub)
	}
	*sub = nil
}

func muted[E any](l collection.List[E], sub *collection.Subscription) collection.List[E] {
	if sub == nil {
		return l
	}
	if o, ok := l.(collection.Observable[E]); ok {
		return o.Without(*sub)
	}
	return l
}
