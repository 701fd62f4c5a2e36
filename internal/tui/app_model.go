// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-selection-sync/internal/logger"
	"github.com/MKhiriev/go-selection-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Component is a widget embedded in a tab.
type Component interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// ViewModel is the bound side of a tab. Its list mirrors the selection of
// the tab's widget.
type ViewModel interface {
	Summary() string
	Strings() []string
	SelectAll() error
	ClearSelection() error
}

// Tab pairs a widget with the view-model bound to its selection.
type Tab struct {
	Title     string
	Widget    Component
	ViewModel ViewModel
	// Hint is shown under the tab in the help line.
	Hint string
}

var (
	clipboardWriterDefault = clipboard.WriteAll
	clipboardWriter        = clipboardWriterDefault
)

type appModel struct {
	tabs   []Tab
	active int
	info   models.AppBuildInfo
	log    *logger.Logger

	status       string
	showInfo     bool
	showError    bool
	errorOverlay errorOverlayModel
	err          error
}

func newAppModel(info models.AppBuildInfo, log *logger.Logger, tabs []Tab) appModel {
	return appModel{
		tabs: tabs,
		info: info,
		log:  log,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.toggle) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showInfo = false
			}
			return m, nil
		}
		return m.updateKeys(msg)
	case widgetErrMsg:
		m.log.Error().Err(msg.err).Msg("selection change failed")
		m.showErrorf(msg.err.Error())
		return m, nil
	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.tabs) == 0 {
		return m, nil
	}
	tab := m.tabs[m.active]

	switch {
	case key.Matches(msg, keys.tab):
		m.active = (m.active + 1) % len(m.tabs)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.active = (m.active + len(m.tabs) - 1) % len(m.tabs)
		return m, nil
	case key.Matches(msg, keys.info):
		m.showInfo = true
		return m, nil
	case key.Matches(msg, keys.vmAll):
		return m, errCmd(tab.ViewModel.SelectAll())
	case key.Matches(msg, keys.vmClear):
		return m, errCmd(tab.ViewModel.ClearSelection())
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(tab.ViewModel)
	}

	return m, tab.Widget.Update(msg)
}

func (m appModel) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.info))
	}
	if len(m.tabs) == 0 {
		return appStyle.Render(renderPage("SELECTSYNC", "", ""))
	}

	tab := m.tabs[m.active]

	titles := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.active {
			titles = append(titles, activeTabStyle.Render(t.Title))
		} else {
			titles = append(titles, tabStyle.Render(t.Title))
		}
	}

	panel := panelStyle.Render(renderViewModel(tab.ViewModel))
	data := lipgloss.JoinHorizontal(lipgloss.Top, tab.Widget.View(), "  ", panel)
	if m.status != "" {
		data += "\n" + m.status
	}

	hotKeys := "tab: next  a: select all  x: clear  c: copy  i: about"
	if tab.Hint != "" {
		hotKeys = tab.Hint + "\n" + hotKeys
	}

	body := strings.Join(titles, " ") + "\n\n" + renderPage(strings.ToUpper(tab.Title), data, hotKeys)
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func renderViewModel(vm ViewModel) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(vm.Summary()))
	b.WriteString("\n")
	for _, item := range vm.Strings() {
		b.WriteString("• ")
		b.WriteString(fitText(item, maxLabelWidth))
		b.WriteString("\n")
	}
	return b.String()
}

func cmdCopy(vm ViewModel) tea.Cmd {
	return func() tea.Msg {
		text := vm.Summary()
		if items := vm.Strings(); len(items) > 0 {
			text += "\n" + strings.Join(items, "\n")
		}
		if err := clipboardWriter(text); err != nil {
			return widgetErrMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
