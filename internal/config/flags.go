// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"strings"
)

// ItemList is a comma separated list of items.
// It implements the flag.Value interface.
type ItemList []string

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-c/-config config file path (.json, .yaml, .yml or .toml)
//	-names comma separated names
//	-secondaries comma separated secondaries
//	-select comma separated names selected at start
//	-log-level zerolog level
//	-log-file log file path
//	-calendar-mode none, single-date, single-range or multiple-range
//	-calendar-start first selectable day (2006-01-02)
//	-calendar-end last selectable day (2006-01-02)
func ParseFlags() *StructuredConfig {
	var names, secondaries, initialSelection ItemList
	var configPath string
	var logLevel, logFile string
	var calendarMode, calendarStart, calendarEnd string

	flag.StringVar(&configPath, "c", "", "Config file path")
	flag.StringVar(&configPath, "config", "", "Config file path (alias)")
	flag.Var(&names, "names", "Comma separated names")
	flag.Var(&secondaries, "secondaries", "Comma separated secondaries")
	flag.Var(&initialSelection, "select", "Comma separated names selected at start")
	flag.StringVar(&logLevel, "log-level", "", "Log level (e.g., debug, info)")
	flag.StringVar(&logFile, "log-file", "", "Log file path")
	flag.StringVar(&calendarMode, "calendar-mode", "", "Calendar selection mode")
	flag.StringVar(&calendarStart, "calendar-start", "", "First selectable day (2006-01-02)")
	flag.StringVar(&calendarEnd, "calendar-end", "", "Last selectable day (2006-01-02)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Names:            names,
			Secondaries:      secondaries,
			InitialSelection: initialSelection,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		Calendar: Calendar{
			SelectionMode: calendarMode,
			DisplayStart:  calendarStart,
			DisplayEnd:    calendarEnd,
		},
		ConfigFilePath: configPath,
	}
}

// String joins the items with commas.
func (l *ItemList) String() string {
	return strings.Join(*l, ",")
}

// Set splits s on commas and appends the trimmed, non-empty parts. It may be
// called once per occurrence of the flag.
func (l *ItemList) Set(s string) error {
	var added int
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		*l = append(*l, item)
		added++
	}

	if added == 0 {
		return errors.New("need at least one item")
	}
	return nil
}
