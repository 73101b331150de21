// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and visual properties for Arbor's
// terminal UI. All colors use lipgloss ANSI 256-color codes for broad
// terminal compatibility.
//
// The fields cover both universal chrome (text, selection, borders)
// and the JSON value categories that recur across panes — tree rows,
// search results, and the preview all color keys, strings, numbers,
// and literals the same way.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// JSON value colors.
	KeyForeground     lipgloss.Color // object member keys
	StringForeground  lipgloss.Color
	NumberForeground  lipgloss.Color
	LiteralForeground lipgloss.Color // true, false, null
	BranchForeground  lipgloss.Color // object/array container rows

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	AccentColor      lipgloss.Color // focused pane markers, active scrollbar thumb
	HelpText         lipgloss.Color

	// Animation accents: background tint for recently-changed rows.
	// HotAccentPut is used for restored rows; HotAccentRemove for rows
	// whose neighbors just left the view.
	HotAccentPut    lipgloss.Color
	HotAccentRemove lipgloss.Color

	// Search and filter match highlighting.
	SearchHighlightBackground lipgloss.Color // background tint for matched rows
	SearchCurrentBackground   lipgloss.Color // background for the current match

	// Modal overlays.
	ModalForeground lipgloss.Color // text color inside modal boxes
	ModalBackground lipgloss.Color // background color for modal boxes

	// Status bar feedback.
	ErrorForeground lipgloss.Color
	DirtyForeground lipgloss.Color // unsaved-changes marker
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	KeyForeground:     lipgloss.Color("75"),  // blue
	StringForeground:  lipgloss.Color("114"), // green
	NumberForeground:  lipgloss.Color("220"), // amber
	LiteralForeground: lipgloss.Color("141"), // light purple
	BranchForeground:  lipgloss.Color("255"), // bright white

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	AccentColor:      lipgloss.Color("220"),
	HelpText:         lipgloss.Color("241"),

	HotAccentPut:    lipgloss.Color("58"), // dark amber background tint
	HotAccentRemove: lipgloss.Color("52"), // dark red background tint

	SearchHighlightBackground: lipgloss.Color("58"),  // dark amber (matches HotAccentPut)
	SearchCurrentBackground:   lipgloss.Color("100"), // brighter amber for current match

	ModalForeground: lipgloss.Color("252"), // same as NormalText
	ModalBackground: lipgloss.Color("237"), // slightly lighter than terminal background

	ErrorForeground: lipgloss.Color("196"), // bright red
	DirtyForeground: lipgloss.Color("208"), // orange
}
