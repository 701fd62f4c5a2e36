// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUserQuit is returned by Run when the user leaves the program.
var ErrUserQuit = errors.New("user quit")

var errNoFinalModel = errors.New("program returned an unexpected model")
