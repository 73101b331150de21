// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package treeui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arbor-foundation/arbor/lib/tui"
)

// FindModel owns the search query text. The query feeds both find-next
// (n) and find-all (F); typing a new query does not itself search —
// the engine is only consulted when the user asks for a match.
type FindModel struct {
	// Input is the current query text.
	Input string

	// Active is true when the find input has keyboard focus
	// (the user pressed / to start typing).
	Active bool
}

// HandleRune processes a character typed while the find bar is active.
func (find *FindModel) HandleRune(character rune) {
	find.Input += string(character)
}

// HandleBackspace removes the last character from the query.
// Returns true if the input changed.
func (find *FindModel) HandleBackspace() bool {
	if len(find.Input) == 0 {
		return false
	}
	runes := []rune(find.Input)
	find.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the query and deactivates the input.
func (find *FindModel) Clear() {
	find.Input = ""
	find.Active = false
}

// View renders the find bar. When active, shows the input with a
// cursor. When inactive with text, shows the query as a subtle
// indicator. When inactive with no text, returns empty string (hidden).
func (find *FindModel) View(theme tui.Theme, width int) string {
	if !find.Active && find.Input == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Foreground(theme.NormalText).
		Width(width)

	if find.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return style.Render(" / " + find.Input + cursor)
	}

	dimStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width)
	return dimStyle.Render(" find: " + find.Input)
}
