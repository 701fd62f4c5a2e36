// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-selection-sync/internal/logger"
	"github.com/MKhiriev/go-selection-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the selection demo in the terminal.
type TUI struct {
	info models.AppBuildInfo
	log  *logger.Logger
	tabs []Tab
	opts []tea.ProgramOption
}

// New creates a TUI showing tabs in order.
func New(info models.AppBuildInfo, log *logger.Logger, tabs ...Tab) *TUI {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{
		info: info,
		log:  log.Component("tui"),
		tabs: tabs,
		opts: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run blocks until the user quits or ctx is cancelled. Quitting by key
// returns ErrUserQuit.
func (t *TUI) Run(ctx context.Context) error {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.opts...)
	finalModel, err := tea.NewProgram(newAppModel(t.info, t.log, t.tabs), opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run program: %w", err)
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return errNoFinalModel
	}
	return result.err
}
