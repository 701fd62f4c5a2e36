// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func assertParsedConfig(t *testing.T, cfg *StructuredConfig) {
	t.Helper()
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"Abraham", "George"}, cfg.App.Names)
	assert.Equal(t, []string{"Abraham1", "George1"}, cfg.App.Secondaries)
	assert.Equal(t, []string{"George"}, cfg.App.InitialSelection)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "app.log", cfg.Log.File)

	assert.Equal(t, "single-range", cfg.Calendar.SelectionMode)
	assert.Equal(t, "2026-02-01", cfg.Calendar.DisplayStart)
	assert.Equal(t, "2026-02-28", cfg.Calendar.DisplayEnd)

	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_JSON(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, "config.json", `{
		"app": {
			"names": ["Abraham", "George"],
			"secondaries": ["Abraham1", "George1"],
			"initial_selection": ["George"]
		},
		"log": { "level": "debug", "file": "app.log" },
		"calendar": {
			"selection_mode": "single-range",
			"display_start": "2026-02-01",
			"display_end": "2026-02-28"
		}
	}`)

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	assertParsedConfig(t, cfg)
}

func TestParseFile_YAML(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.YML"} {
		t.Run(name, func(t *testing.T) {
			p := writeConfigFile(t, name, `
app:
  names: [Abraham, George]
  secondaries:
    - Abraham1
    - George1
  initial_selection: [George]
log:
  level: debug
  file: app.log
calendar:
  selection_mode: single-range
  display_start: "2026-02-01"
  display_end: "2026-02-28"
`)

			cfg, err := parseFile(p)

			require.NoError(t, err)
			assertParsedConfig(t, cfg)
		})
	}
}

func TestParseFile_TOML(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, "config.toml", `
[app]
names = ["Abraham", "George"]
secondaries = ["Abraham1", "George1"]
initial_selection = ["George"]

[log]
level = "debug"
file = "app.log"

[calendar]
selection_mode = "single-range"
display_start = "2026-02-01"
display_end = "2026-02-28"
`)

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	assertParsedConfig(t, cfg)
}

func TestParseFile_EmptyFile(t *testing.T) {
	for _, name := range []string{"empty.json", "empty.yaml", "empty.toml"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := parseFile(writeConfigFile(t, name, ""))
			require.NoError(t, err)
			assert.Equal(t, &StructuredConfig{}, cfg)
		})
	}
}

func TestParseFile_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseFile("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a config file")
}

func TestParseFile_UnsupportedExtension(t *testing.T) {
	cfg, err := parseFile(writeConfigFile(t, "config.ini", "names=Joel"))

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrUnsupportedConfigFile)
}

func TestParseFile_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "bad.json", body: `{ this is not json }`, want: "error decoding json configs"},
		{name: "bad.yaml", body: "app: [unclosed", want: "error decoding yaml configs"},
		{name: "bad.toml", body: "[app\nnames = 1", want: "error decoding toml configs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFile(writeConfigFile(t, tt.name, tt.body))

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
