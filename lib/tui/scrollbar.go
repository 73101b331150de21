// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar draws the one-column scrollbar beside a pane: a dim
// track with a heavy thumb covering the slice of the content that is
// on screen. When everything fits, the thumb spans the whole column.
// focused switches the thumb to the accent color so the active pane
// reads at a glance.
func RenderScrollbar(theme Theme, height, totalItems, visibleItems, scrollOffset int, focused bool) string {
	if height <= 0 {
		return ""
	}

	trackStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)
	thumbStyle := trackStyle
	if focused {
		thumbStyle = lipgloss.NewStyle().Foreground(theme.AccentColor)
	}

	thumbTop, thumbBottom := 0, height
	if totalItems > visibleItems && totalItems > 0 {
		span := height * visibleItems / totalItems
		if span < 1 {
			span = 1
		}
		top := 0
		if slack, scrollable := height-span, totalItems-visibleItems; slack > 0 && scrollable > 0 {
			top = scrollOffset * slack / scrollable
		}
		if top > height-span {
			top = height - span
		}
		thumbTop, thumbBottom = top, top+span
	}

	var column strings.Builder
	for line := 0; line < height; line++ {
		if line > 0 {
			column.WriteByte('\n')
		}
		if line >= thumbTop && line < thumbBottom {
			column.WriteString(thumbStyle.Render("┃"))
		} else {
			column.WriteString(trackStyle.Render("│"))
		}
	}
	return column.String()
}
