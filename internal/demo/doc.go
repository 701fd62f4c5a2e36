// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package demo holds the view-models of the selectsync demo program.
//
// A view-model owns plain observable lists that know nothing about widgets.
// The selection registry binds them to the widgets' own selection collections.
package demo
