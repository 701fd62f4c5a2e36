// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synchronizer

import "errors"

var (
	// ErrUnhandledAction is returned when a change event carries an action
	// the synchronizer does not implement.
	ErrUnhandledAction = errors.New("unhandled change action")
	// ErrConversion wraps failures of an ItemConverter.
	ErrConversion = errors.New("item conversion failed")
)

var (
	// ErrNilList is returned by constructors given a nil master or target,
	// including a typed nil list of the collection package.
	ErrNilList = errors.New("nil list")
	// ErrNilConverter is returned by New when no converter is given and the
	// element types differ, so identity cannot stand in.
	ErrNilConverter = errors.New("nil converter for distinct element types")
)
