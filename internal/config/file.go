// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of a config file. The same keys
// are used for JSON, YAML and TOML.
type StructuredFileConfig struct {
	App struct {
		Names            []string `json:"names" yaml:"names" toml:"names"`
		Secondaries      []string `json:"secondaries" yaml:"secondaries" toml:"secondaries"`
		InitialSelection []string `json:"initial_selection" yaml:"initial_selection" toml:"initial_selection"`
	} `json:"app,omitempty" yaml:"app,omitempty" toml:"app"`

	Log struct {
		Level string `json:"level" yaml:"level" toml:"level"`
		File  string `json:"file" yaml:"file" toml:"file"`
	} `json:"log,omitempty" yaml:"log,omitempty" toml:"log"`

	Calendar struct {
		SelectionMode string `json:"selection_mode" yaml:"selection_mode" toml:"selection_mode"`
		DisplayStart  string `json:"display_start" yaml:"display_start" toml:"display_start"`
		DisplayEnd    string `json:"display_end" yaml:"display_end" toml:"display_end"`
	} `json:"calendar,omitempty" yaml:"calendar,omitempty" toml:"calendar"`
}

type decodeFunc func(r io.Reader, v any) error

var decoders = map[string]decodeFunc{
	".json": func(r io.Reader, v any) error { return json.NewDecoder(r).Decode(v) },
	".yaml": func(r io.Reader, v any) error { return yaml.NewDecoder(r).Decode(v) },
	".yml":  func(r io.Reader, v any) error { return yaml.NewDecoder(r).Decode(v) },
	".toml": func(r io.Reader, v any) error {
		_, err := toml.NewDecoder(r).Decode(v)
		return err
	},
}

func parseFile(path string) (*StructuredConfig, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fileCfg StructuredFileConfig
	if err := decode(file, &fileCfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decoding %s configs: %w", strings.TrimPrefix(ext, "."), err)
	}

	cfg := &StructuredConfig{
		App: App{
			Names:            fileCfg.App.Names,
			Secondaries:      fileCfg.App.Secondaries,
			InitialSelection: fileCfg.App.InitialSelection,
		},
		Log: Log{
			Level: fileCfg.Log.Level,
			File:  fileCfg.Log.File,
		},
		Calendar: Calendar{
			SelectionMode: fileCfg.Calendar.SelectionMode,
			DisplayStart:  fileCfg.Calendar.DisplayStart,
			DisplayEnd:    fileCfg.Calendar.DisplayEnd,
		},
	}

	return cfg, nil
}
