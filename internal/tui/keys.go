// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	toggle    key.Binding
	selectAll key.Binding
	week      key.Binding
	prevMonth key.Binding
	nextMonth key.Binding
	tab       key.Binding
	backtab   key.Binding
	vmAll     key.Binding
	vmClear   key.Binding
	copy      key.Binding
	info      key.Binding
	esc       key.Binding
	quit      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	toggle:    key.NewBinding(key.WithKeys(" ", "enter")),
	selectAll: key.NewBinding(key.WithKeys("ctrl+a")),
	week:      key.NewBinding(key.WithKeys("w")),
	prevMonth: key.NewBinding(key.WithKeys("[", "pgup")),
	nextMonth: key.NewBinding(key.WithKeys("]", "pgdown")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	vmAll:     key.NewBinding(key.WithKeys("a")),
	vmClear:   key.NewBinding(key.WithKeys("x")),
	copy:      key.NewBinding(key.WithKeys("c")),
	info:      key.NewBinding(key.WithKeys("i")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
