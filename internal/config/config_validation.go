// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"
)

// CalendarSelectionModes lists the accepted values of
// [Calendar.SelectionMode].
var CalendarSelectionModes = []string{"none", "single-date", "single-range", "multiple-range"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.Names) == 0 {
		return fmt.Errorf("%w: no names", ErrInvalidAppConfigs)
	}
	for _, items := range [][]string{cfg.App.Names, cfg.App.Secondaries} {
		if dup, ok := firstDuplicate(items); ok {
			return fmt.Errorf("%w: %q listed twice", ErrInvalidAppConfigs, dup)
		}
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	if cfg.Calendar.SelectionMode != "" && !slices.Contains(CalendarSelectionModes, cfg.Calendar.SelectionMode) {
		return fmt.Errorf("%w: unknown selection mode %q", ErrInvalidCalendarConfigs, cfg.Calendar.SelectionMode)
	}
	start, err := cfg.Calendar.Start()
	if err != nil {
		return err
	}
	end, err := cfg.Calendar.End()
	if err != nil {
		return err
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return fmt.Errorf("%w: display range ends before it starts", ErrInvalidCalendarConfigs)
	}

	return nil
}

// Start parses DisplayStart. An empty value yields the zero time.
func (c Calendar) Start() (time.Time, error) {
	return parseDay(c.DisplayStart)
}

// End parses DisplayEnd. An empty value yields the zero time.
func (c Calendar) End() (time.Time, error) {
	return parseDay(c.DisplayEnd)
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidCalendarConfigs, err)
	}
	return d, nil
}

func firstDuplicate(items []string) (string, bool) {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			return item, true
		}
		seen[item] = struct{}{}
	}
	return "", false
}
