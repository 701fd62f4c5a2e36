// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive selectsync application runtime.
//
// It wires the demo view-models, the terminal widgets and the selection
// registry that keeps them synchronized into a single process lifecycle.
package client
