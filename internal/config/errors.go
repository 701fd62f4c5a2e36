// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAppConfigs indicates an empty item source or duplicated
	// items within one source.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidCalendarConfigs indicates an unknown selection mode, a
	// malformed display bound or a display range that ends before it starts.
	ErrInvalidCalendarConfigs = errors.New("invalid calendar configuration")
	// ErrUnsupportedConfigFile indicates a config file extension other than
	// .json, .yaml, .yml or .toml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
