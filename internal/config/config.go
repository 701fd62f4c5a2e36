// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// selectsync demo. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// config file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the item sources of the demo widgets.
	App App `envPrefix:"APP_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Calendar holds the calendar widget settings.
	Calendar Calendar `envPrefix:"CALENDAR_"`

	// ConfigFilePath is the optional path to a JSON, YAML or TOML
	// configuration file, chosen by extension. When non-empty, the file is
	// parsed and merged on top of the values already loaded from environment
	// variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds the items offered by the demo widgets.
type App struct {
	// Names is the item source of the names selector.
	// Env: APP_NAMES (comma separated)
	Names []string `env:"NAMES" envSeparator:","`

	// Secondaries is the item source of the secondaries grid. A secondary
	// belongs to every name it contains.
	// Env: APP_SECONDARIES (comma separated)
	Secondaries []string `env:"SECONDARIES" envSeparator:","`

	// InitialSelection is selected in the names selector before binding,
	// so it reaches the view-model through the synchronizer.
	// Env: APP_INITIAL_SELECTION (comma separated)
	InitialSelection []string `env:"INITIAL_SELECTION" envSeparator:","`
}

// Log holds logger settings. The terminal is owned by the UI, so logs go to
// a file.
type Log struct {
	// Level is a zerolog level name (e.g. "debug", "info").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file path. Relative paths are resolved next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Calendar holds the calendar widget settings.
type Calendar struct {
	// SelectionMode is one of none, single-date, single-range or
	// multiple-range.
	// Env: CALENDAR_SELECTION_MODE
	SelectionMode string `env:"SELECTION_MODE"`

	// DisplayStart and DisplayEnd bound the selectable days, formatted as
	// 2006-01-02. Empty means open.
	// Env: CALENDAR_DISPLAY_START, CALENDAR_DISPLAY_END
	DisplayStart string `env:"DISPLAY_START"`
	DisplayEnd   string `env:"DISPLAY_END"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()
}

// Defaults returns the built-in configuration of the demo.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Names: []string{"Abraham", "George", "James", "Joel", "John", "Peter", "Samuel", "Zachariah"},
			Secondaries: []string{
				"Abraham1", "George1", "James1", "Joel1", "John1", "Peter1", "Samuel1", "Zachariah1",
				"Abraham2", "George2", "James2", "Joel2", "John2", "Peter2", "Samuel2", "Zachariah2",
			},
		},
		Log: Log{
			Level: "info",
			File:  "selectsync.log",
		},
		Calendar: Calendar{
			SelectionMode: "multiple-range",
		},
	}
}
