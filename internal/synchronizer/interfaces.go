// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synchronizer

//go:generate mockgen -source=interfaces.go -destination=../mock/manager_mock.go -package=mock

// Manager is the lifecycle capability shared by every synchronizer,
// regardless of the lists or the widget it serves.
type Manager interface {
	// StartSynchronizing subscribes to both lists and aligns their content.
	StartSynchronizing() error
	// StopSynchronizing unsubscribes from both lists. Content is left as is.
	StopSynchronizing()
}
