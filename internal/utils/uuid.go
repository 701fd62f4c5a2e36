// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the UI packages.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for widgets and other registry keys.
type UUIDGenerator struct {
	prefix string
}

// NewUUIDGenerator returns a generator whose identifiers start with prefix
// followed by a dash. An empty prefix yields bare UUIDs.
func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns a new time-ordered (v7) UUID, falling back to a random
// v4 UUID if the v7 source fails.
func (g *UUIDGenerator) Generate() string {
	id := uuid.NewString()
	if v7, err := uuid.NewV7(); err == nil {
		id = v7.String()
	}

	if g.prefix == "" {
		return id
	}
	return g.prefix + "-" + id
}
