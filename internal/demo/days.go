// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package demo

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-selection-sync/internal/synchronizer"
)

// DayConverter maps calendar dates to ISO 8601 day strings and back.
// Parsed days are midnight in Location.
type DayConverter struct {
	Location *time.Location
}

var _ synchronizer.ItemConverter[time.Time, string] = DayConverter{}

func (c DayConverter) Convert(d time.Time) (string, error) {
	return d.Format(time.DateOnly), nil
}

func (c DayConverter) ConvertBack(s string) (time.Time, error) {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return d, nil
}
