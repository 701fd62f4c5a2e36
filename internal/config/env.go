// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Variables are grouped by the
// APP_, LOG_ and CALENDAR_ prefixes of [StructuredConfig], for example
// APP_NAMES=Ann,Bob, LOG_LEVEL=debug or CALENDAR_SELECTION_MODE=single-range;
// CONFIG names the config file.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error reading selectsync env configs: %w", err)
	}

	return nil
}
