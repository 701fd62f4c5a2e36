// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package selection

import "errors"

var (
	// ErrNoSelectableCollection is returned when a widget has no selection
	// collection with the requested element type.
	ErrNoSelectableCollection = errors.New("target object has no selected items collection to bind")
	// ErrNilWidget is returned when no widget is given.
	ErrNilWidget = errors.New("nil widget")
)
