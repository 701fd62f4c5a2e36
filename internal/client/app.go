// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-selection-sync/internal/config"
	"github.com/MKhiriev/go-selection-sync/internal/demo"
	"github.com/MKhiriev/go-selection-sync/internal/logger"
	"github.com/MKhiriev/go-selection-sync/internal/selection"
	"github.com/MKhiriev/go-selection-sync/internal/tui"
	"github.com/MKhiriev/go-selection-sync/models"
)

// App owns the demo view-models and keeps them bound to their widgets for
// as long as it runs.
type App struct {
	log      *logger.Logger
	registry *selection.Registry
	link     *demo.Link
	ui       UI

	names       *demo.Selection[string]
	secondaries *demo.Selection[string]
	days        *demo.Selection[string]
}

var _ Client = (*App)(nil)

// NewApp builds the widgets described by cfg and binds each one to its
// view-model. On error every binding made so far is released.
func NewApp(cfg *config.StructuredConfig, info models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}

	mode, err := tui.ParseCalendarSelectionMode(cfg.Calendar.SelectionMode)
	if err != nil {
		return nil, fmt.Errorf("calendar: %w", err)
	}
	start, err := cfg.Calendar.Start()
	if err != nil {
		return nil, err
	}
	end, err := cfg.Calendar.End()
	if err != nil {
		return nil, err
	}

	a := &App{
		log:         log.Component("app"),
		registry:    selection.NewRegistry(log),
		names:       demo.NewSelection("names", cfg.App.Names, log),
		secondaries: demo.NewSelection("secondaries", cfg.App.Secondaries, log),
		days:        demo.NewSelection[string]("days", nil, log),
	}
	a.link = demo.NewLink(a.names, a.secondaries)

	namesWidget := tui.NewListSelector("Names", cfg.App.Names)
	secondariesWidget := tui.NewListSelector("Secondaries", cfg.App.Secondaries, tui.WithColumns[string](2))
	calendar := tui.NewCalendar(mode, tui.WithDisplayRange(start, end), tui.WithDisplayDate(initialDate(start, end)))

	// The widget is the master side, so its initial selection is copied to
	// the view-model when the binding starts.
	if err := namesWidget.SelectedItems().AddRange(cfg.App.InitialSelection...); err != nil {
		return nil, fmt.Errorf("initial selection: %w", err)
	}

	if err := a.bind(namesWidget, secondariesWidget, calendar); err != nil {
		a.Close()
		return nil, err
	}

	a.ui = tui.New(info, log,
		tui.Tab{Title: "Names", Widget: namesWidget, ViewModel: a.names, Hint: "space: toggle  ctrl+a: select all in widget"},
		tui.Tab{Title: "Secondaries", Widget: secondariesWidget, ViewModel: a.secondaries, Hint: "space: toggle  ←/→: column"},
		tui.Tab{Title: "Calendar", Widget: calendar, ViewModel: a.days, Hint: "space: toggle day  w: select week  [ ]: month"},
	)

	return a, nil
}

// bind attaches the secondaries before the names, so secondaries picked by
// the link from the initial names reach their widget.
func (a *App) bind(names, secondaries *tui.ListSelector[string], calendar *tui.Calendar) error {
	if err := selection.Attach[string](a.registry, secondaries, a.secondaries.Selected()); err != nil {
		return fmt.Errorf("bind secondaries: %w", err)
	}
	if err := selection.Attach[string](a.registry, names, a.names.Selected()); err != nil {
		return fmt.Errorf("bind names: %w", err)
	}
	if err := selection.AttachWithConverter[time.Time, string](a.registry, calendar, a.days.Selected(), demo.DayConverter{}); err != nil {
		return fmt.Errorf("bind calendar: %w", err)
	}

	a.log.Info().Int("bindings", a.registry.Len()).Msg("widgets bound")
	return nil
}

// Run shows the UI and releases every binding when it returns. Quitting by
// key is not an error.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	a.log.Info().Str("summary", a.names.Summary()).Msg("starting ui")
	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.log.Info().Msg("user quit")
		return nil
	}
	return err
}

// Close stops all synchronizers. It is safe to call more than once.
func (a *App) Close() {
	a.link.Close()
	a.registry.Close()
}

// initialDate places the calendar cursor on today, clamped to the display
// range.
func initialDate(start, end time.Time) time.Time {
	now := time.Now()
	switch {
	case !start.IsZero() && now.Before(start):
		return start
	case !end.IsZero() && now.After(end):
		return end
	default:
		return now
	}
}
