// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package synchronizer keeps two lists mirrored in both directions.
//
// A [TwoListSynchronizer] owns references to a master list and a target list
// and an [ItemConverter] mapping between their element types. Once started,
// every change reported by one list is replayed onto the other. While a
// change is replayed, the synchronizer's subscription on the destination
// list is detached, so the replay never travels back to the source.
package synchronizer
