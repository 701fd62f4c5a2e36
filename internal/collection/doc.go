// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package collection provides ordered, index-addressable lists that report
// their mutations to subscribers.
//
// [ObservableList] emits a [ChangeEvent] for every committed mutation
// (add, remove, replace, move, reset). [PlainList] offers the same [List]
// surface without notifications. Lists never hold a reference to their
// subscribers beyond the registered handler; subscribers release it with
// [Observable.Unsubscribe].
package collection
