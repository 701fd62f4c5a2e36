// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "defaults",
			mutate: func(*StructuredConfig) {},
		},
		{
			name:    "no names",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Names = nil },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "duplicate name",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Names = []string{"Joel", "Joel"} },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "duplicate secondary",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Secondaries = []string{"Joel1", "Joel1"} },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.Log.Level = "loud" },
			wantErr: ErrInvalidLogConfigs,
		},
		{
			name:    "unknown selection mode",
			mutate:  func(cfg *StructuredConfig) { cfg.Calendar.SelectionMode = "weekly" },
			wantErr: ErrInvalidCalendarConfigs,
		},
		{
			name:    "malformed display start",
			mutate:  func(cfg *StructuredConfig) { cfg.Calendar.DisplayStart = "01/02/2026" },
			wantErr: ErrInvalidCalendarConfigs,
		},
		{
			name: "display range ends before it starts",
			mutate: func(cfg *StructuredConfig) {
				cfg.Calendar.DisplayStart = "2026-03-02"
				cfg.Calendar.DisplayEnd = "2026-03-01"
			},
			wantErr: ErrInvalidCalendarConfigs,
		},
		{
			name: "one day display range",
			mutate: func(cfg *StructuredConfig) {
				cfg.Calendar.DisplayStart = "2026-03-01"
				cfg.Calendar.DisplayEnd = "2026-03-01"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCalendar_Bounds(t *testing.T) {
	c := Calendar{DisplayStart: "2026-04-01"}

	start, err := c.Start()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local), start)

	end, err := c.End()
	require.NoError(t, err)
	assert.True(t, end.IsZero())
}
