// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ConfirmModal is a small centered yes/no overlay. The owning model
// routes all keyboard input here while the modal is open: y/enter
// confirms, n/esc cancels.
type ConfirmModal struct {
	// Title is the bold first line (e.g. "Delete node").
	Title string

	// Prompt is the question shown under the title, typically naming
	// the thing being acted on.
	Prompt string

	theme Theme
}

// NewConfirmModal creates a confirmation modal with the given title
// and prompt.
func NewConfirmModal(title, prompt string, theme Theme) ConfirmModal {
	return ConfirmModal{Title: title, Prompt: prompt, theme: theme}
}

// Modal chrome overhead: 2 columns border + 2 columns padding
// horizontal; 2 lines border vertical.
const (
	confirmChromeWidth = 4
	// Margin between the modal edge and the screen edge, so the user
	// can see the underlying view isn't gone.
	confirmMaxWidth = 60
)

// Render produces the modal overlay lines for splicing onto the view.
// Returns the rendered lines and the anchor position (top-left corner
// in screen coordinates).
func (modal ConfirmModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := confirmMaxWidth - confirmChromeWidth
	if screenWidth-confirmChromeWidth < innerWidth {
		innerWidth = screenWidth - confirmChromeWidth
	}
	if innerWidth < 10 {
		innerWidth = 10
	}

	backgroundStyle := lipgloss.NewStyle().
		Background(modal.theme.ModalBackground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.HeaderForeground).
		Background(modal.theme.ModalBackground)
	textStyle := lipgloss.NewStyle().
		Foreground(modal.theme.ModalForeground).
		Background(modal.theme.ModalBackground)
	footerStyle := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.ModalBackground)

	prompt := modal.Prompt
	if ansi.StringWidth(prompt) > innerWidth {
		prompt = ansi.Truncate(prompt, innerWidth-1, "…")
	}

	pad := func(styled string) string {
		width := ansi.StringWidth(styled)
		if width < innerWidth {
			styled += backgroundStyle.Render(strings.Repeat(" ", innerWidth-width))
		}
		return styled
	}

	inner := strings.Join([]string{
		pad(titleStyle.Render(modal.Title)),
		pad(textStyle.Render(prompt)),
		pad(""),
		pad(footerStyle.Render("y/enter confirm  n/esc cancel")),
	}, "\n")

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor).
		Background(modal.theme.ModalBackground).
		Padding(0, 1)
	rendered := borderStyle.Render(inner)

	resultLines := strings.Split(rendered, "\n")
	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}

	anchorX := (screenWidth - renderedWidth) / 2
	anchorY := (screenHeight - len(resultLines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}

	return resultLines, anchorX, anchorY
}
