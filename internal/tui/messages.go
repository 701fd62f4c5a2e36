// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import tea "github.com/charmbracelet/bubbletea"

// widgetErrMsg carries a failed mutation of a selection or view-model list.
type widgetErrMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}

// errCmd turns a mutation error into a message. A nil error yields no command.
func errCmd(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return func() tea.Msg { return widgetErrMsg{err: err} }
}
