// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ListOption is a single selectable item in a list overlay.
type ListOption struct {
	Label string // display text shown in the list
	Value string // value handed back to the owner on selection
}

// ListOverlay renders a floating menu anchored at a screen position.
// It captures all keyboard input when active (up/down to navigate,
// enter to select, escape to dismiss). The owning model holds the
// overlay instance and routes input to it while it is open.
type ListOverlay struct {
	Options []ListOption
	Cursor  int
	AnchorX int // screen X coordinate of the top-left corner
	AnchorY int // screen Y coordinate of the top-left corner
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (list *ListOverlay) MoveUp() {
	list.Cursor--
	if list.Cursor < 0 {
		list.Cursor = len(list.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (list *ListOverlay) MoveDown() {
	list.Cursor++
	if list.Cursor >= len(list.Options) {
		list.Cursor = 0
	}
}

// Selected returns the currently highlighted option.
func (list *ListOverlay) Selected() ListOption {
	return list.Options[list.Cursor]
}

// Width returns the total visible width of the rendered list in
// columns. This matches the width used by Render.
func (list *ListOverlay) Width() int {
	maxLabelWidth := 0
	for _, option := range list.Options {
		labelWidth := ansi.StringWidth(option.Label)
		if labelWidth > maxLabelWidth {
			maxLabelWidth = labelWidth
		}
	}
	// Layout: " > LABEL  " — 3 chars prefix (space + marker + space),
	// then label, then 1 char padding on each side.
	return 3 + maxLabelWidth + 2
}

// Render produces the list lines for overlay splicing. Each line has
// the same visible width (including left/right padding) and a solid
// background for visual separation from the underlying content. The
// currently highlighted option uses a contrasting background.
func (list *ListOverlay) Render(theme Theme) []string {
	totalWidth := list.Width()
	// Inner width is total minus 1 char padding on each side.
	innerWidth := totalWidth - 2

	backgroundStyle := lipgloss.NewStyle().
		Background(theme.ModalBackground)
	selectedBackground := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	var lines []string
	for index, option := range list.Options {
		marker := " "
		if index == list.Cursor {
			marker = ">"
		}

		prefix := marker + " "
		content := prefix + option.Label
		contentWidth := ansi.StringWidth(content)
		rightPad := innerWidth - contentWidth
		if rightPad < 0 {
			rightPad = 0
		}
		paddedContent := content + strings.Repeat(" ", rightPad)

		var styledLine string
		if index == list.Cursor {
			styledLine = selectedBackground.Render(" " + paddedContent + " ")
		} else {
			styledLine = backgroundStyle.Render(" " + paddedContent + " ")
		}

		// Ensure consistent visible width across all lines.
		lineWidth := ansi.StringWidth(styledLine)
		if lineWidth < totalWidth {
			if index == list.Cursor {
				styledLine += selectedBackground.Render(strings.Repeat(" ", totalWidth-lineWidth))
			} else {
				styledLine += backgroundStyle.Render(strings.Repeat(" ", totalWidth-lineWidth))
			}
		}

		lines = append(lines, styledLine)
	}

	return lines
}
