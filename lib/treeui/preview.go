// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package treeui

import (
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arbor-foundation/arbor/lib/jsondoc"
	"github.com/arbor-foundation/arbor/lib/tui"
)

// previewRenderer forces a 256-color profile for pre-rendered preview
// text. Styling happens outside bubbletea's managed output, and
// lipgloss's default renderer would otherwise re-detect the profile
// from stdout, which the TUI has taken over.
var previewRenderer = lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))

// RenderPreview serializes value with the standard indentation and
// syntax-highlights it with Chroma. Output is truncated at byteLimit
// serialized bytes (0 means unlimited); truncation is marked with a
// trailing ellipsis line. On a Chroma failure the plain serialization
// is returned in faint text.
func RenderPreview(value jsondoc.Value, byteLimit int, theme tui.Theme) string {
	if value == nil {
		return ""
	}

	serialized := string(jsondoc.SerializeIndent(value))
	truncated := false
	if byteLimit > 0 && len(serialized) > byteLimit {
		serialized = serialized[:byteLimit]
		truncated = true
	}

	var buffer strings.Builder
	if err := quick.Highlight(&buffer, serialized, "json", "terminal256", "monokai"); err != nil {
		buffer.Reset()
		buffer.WriteString(previewRenderer.NewStyle().
			Foreground(theme.FaintText).
			Render(serialized))
	}

	output := buffer.String()
	if truncated {
		output += "\n" + previewRenderer.NewStyle().
			Foreground(theme.FaintText).
			Render("…")
	}
	return output
}
