// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	keep    key.Binding
	advance key.Binding
	next    key.Binding
	copyURL key.Binding
	copy    key.Binding
	retry   key.Binding
	quit    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	keep:    key.NewBinding(key.WithKeys(" ")),
	advance: key.NewBinding(key.WithKeys("enter")),
	next:    key.NewBinding(key.WithKeys("n")),
	copyURL: key.NewBinding(key.WithKeys("y")),
	copy:    key.NewBinding(key.WithKeys("c")),
	retry:   key.NewBinding(key.WithKeys("r")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
