// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package selection

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-selection-sync/internal/collection"
	"github.com/MKhiriev/go-selection-sync/internal/logger"
	"github.com/MKhiriev/go-selection-sync/internal/synchronizer"
)

// Registry maps widget identities to the synchronizers that serve them.
type Registry struct {
	mu       sync.Mutex
	managers map[string]synchronizer.Manager
	log      *logger.Logger
}

// NewRegistry creates an empty registry. A nil log discards output.
func NewRegistry(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}

	return &Registry{
		managers: make(map[string]synchronizer.Manager),
		log:      log.Component("selection"),
	}
}

// Attach binds the selection of w to target. Any synchronizer previously
// attached to w is stopped first. A nil target, including a typed nil list,
// only clears the binding.
func Attach[T any](r *Registry, w Widget, target collection.List[T]) error {
	return AttachWithConverter[T, T](r, w, target, synchronizer.Identity[T]())
}

// AttachWithConverter binds the selection of w to target, converting
// elements with conv. See [Attach].
func AttachWithConverter[M, T any](r *Registry, w Widget, target collection.List[T], conv synchronizer.ItemConverter[M, T]) error {
	if w == nil {
		return ErrNilWidget
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.detach(w.ID())
	if collection.IsNil(target) {
		return nil
	}

	master, err := SelectionCollection[M](w)
	if err != nil {
		return err
	}

	log := &logger.Logger{Logger: r.log.With().
		Str("widget", w.ID()).
		Stringer("kind", w.Kind()).
		Logger()}

	s, err := synchronizer.New[M, T](master, target, conv, synchronizer.WithLogger[M, T](log))
	if err != nil {
		return fmt.Errorf("create synchronizer for %q: %w", w.ID(), err)
	}

	return r.start(w.ID(), s)
}

// Detach stops and forgets the synchronizer bound to w, if any.
func (r *Registry) Detach(w Widget) {
	if w == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.detach(w.ID())
}

// Manager returns the synchronizer bound to w.
func (r *Registry) Manager(w Widget) (synchronizer.Manager, bool) {
	if w == nil {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.managers[w.ID()]
	return m, ok
}

// Len returns the number of bound widgets.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.managers)
}

// Close stops every synchronizer and empties the registry.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id := range r.managers {
		r.detach(id)
	}
}

func (r *Registry) start(id string, m synchronizer.Manager) error {
	if err := m.StartSynchronizing(); err != nil {
		return fmt.Errorf("start synchronizing %q: %w", id, err)
	}

	r.managers[id] = m
	r.log.Info().Str("widget", id).Msg("selection attached")
	return nil
}

func (r *Registry) detach(id string) {
	m, ok := r.managers[id]
	if !ok {
		return
	}

	m.StopSynchronizing()
	delete(r.managers, id)
	r.log.Info().Str("widget", id).Msg("selection detached")
}
