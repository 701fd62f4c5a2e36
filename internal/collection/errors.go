// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collection

import "errors"

var (
	// ErrIndexOutOfRange is returned when an index does not address an
	// element (or an insertion point) of the list.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNegativeCount is returned by range operations given a negative count.
	ErrNegativeCount = errors.New("negative count")
)
