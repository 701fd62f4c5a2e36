// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package selection binds the selection collections of widgets to
// application lists.
//
// Each widget kind exposes its native selection through a different
// accessor; [SelectionCollection] picks the right one by [Kind]. A
// [Registry] keeps at most one running synchronizer per widget identity and
// replaces it whenever the widget is bound to a new list.
package selection
