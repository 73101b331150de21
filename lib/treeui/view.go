// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package treeui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/arbor-foundation/arbor/lib/jsondoc"
	"github.com/arbor-foundation/arbor/lib/jsontree"
	"github.com/arbor-foundation/arbor/lib/tui"
)

// Right pane split: fraction of the width given to the tree.
const treeSplitRatio = 0.55

// minRightPaneWidth is the narrowest useful right pane; below this the
// tree takes the whole width.
const minRightPaneWidth = 24

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	var sections []string

	// Top chrome line: either the find bar or the header. The find
	// bar replaces the header so the layout doesn't shift.
	findView := model.find.View(model.theme, model.width)
	if findView != "" {
		sections = append(sections, findView)
	} else {
		sections = append(sections, model.renderHeader())
	}

	treeView := model.renderTreePane()
	if rightWidth := model.rightPaneWidth(); rightWidth > 0 {
		divider := model.renderDivider()
		rightView := model.renderRightPane(rightWidth)
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, treeView, divider, rightView))
	} else {
		sections = append(sections, treeView)
	}

	separator := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))
	sections = append(sections, separator)
	sections = append(sections, model.renderStatusBar())

	output := strings.Join(sections, "\n")

	// Overlay the delete confirmation if active.
	if model.confirm != nil {
		modalLines, anchorX, anchorY := model.confirm.Render(model.width, model.height)
		output = tui.SpliceOverlay(output, modalLines, anchorX, anchorY)
	}

	// Overlay the jump palette if active.
	if model.jump != nil {
		paletteLines := model.renderJumpPalette()
		anchorX := (model.width - ansi.StringWidth(paletteLines[0])) / 2
		if anchorX < 0 {
			anchorX = 0
		}
		output = tui.SpliceOverlay(output, paletteLines, anchorX, 2)
	}

	return output
}

// visibleHeight returns the number of tree rows that fit between the
// chrome elements: one header line above, separator and status bar
// below.
func (model Model) visibleHeight() int {
	return model.height - 3
}

func (model Model) treeWidth() int {
	if model.rightPaneWidth() == 0 {
		return model.width
	}
	return int(float64(model.width) * treeSplitRatio)
}

// rightPaneWidth returns the width of the preview/results pane, or 0
// when the pane is hidden (disabled, or the terminal is too narrow).
func (model Model) rightPaneWidth() int {
	showResults := len(model.results) > 0 || model.searching
	if !model.showPreview && !showResults {
		return 0
	}
	width := model.width - int(float64(model.width)*treeSplitRatio) - 1
	if width < minRightPaneWidth {
		return 0
	}
	return width
}

func (model Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	faintStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText)

	name := model.session.Name()
	if name == "" {
		name = "(no document)"
	}
	header := " " + titleStyle.Render(name)

	if model.session.Dirty() {
		dirtyStyle := lipgloss.NewStyle().
			Foreground(model.theme.DirtyForeground)
		header += dirtyStyle.Render(" ●")
	}
	if size := model.session.Size(); size > 0 {
		header += faintStyle.Render("  " + formatByteSize(size))
	}
	if modTime := model.session.ModTime(); !modTime.IsZero() {
		header += faintStyle.Render("  " + modTime.Format("2006-01-02 15:04"))
	}
	if model.session.CanUndo() {
		header += faintStyle.Render("  [undo armed]")
	}
	if model.searching {
		header += faintStyle.Render("  searching…")
	}
	if model.saving {
		header += faintStyle.Render("  saving…")
	}

	return lipgloss.NewStyle().Width(model.width).MaxWidth(model.width).Render(header)
}

// formatByteSize renders a byte count for the header line.
func formatByteSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}

// renderTreePane renders the visible window of tree rows plus a
// scrollbar column.
func (model Model) renderTreePane() string {
	focused := model.focusRegion == FocusTree || model.focusRegion == FocusEdit
	rowWidth := model.treeWidth() - 1

	visible := model.visibleHeight()
	if visible < 0 {
		visible = 0
	}

	// Result membership for row highlighting.
	resultSet := make(map[jsontree.Node]bool, len(model.results))
	for _, node := range model.results {
		resultSet[node] = true
	}

	now := time.Now()
	var rows []string
	for index := model.scrollOffset; index < model.scrollOffset+visible && index < len(model.rows); index++ {
		row := model.rows[index]
		selected := index == model.cursor

		if selected && model.focusRegion == FocusEdit {
			rows = append(rows, model.renderEditRow(row, rowWidth))
			continue
		}

		rows = append(rows, model.renderRow(row, rowWidth, selected, resultSet[row.Node], now))
	}

	// Pad empty rows.
	rendered := len(rows)
	if rendered < visible {
		emptyStyle := lipgloss.NewStyle().Width(rowWidth)
		for padding := rendered; padding < visible; padding++ {
			rows = append(rows, emptyStyle.Render(""))
		}
	}

	scrollbar := tui.RenderScrollbar(
		model.theme, visible,
		len(model.rows), visible, model.scrollOffset,
		focused,
	)

	contentStyle := lipgloss.NewStyle().
		Width(rowWidth).
		Height(visible)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		contentStyle.Render(strings.Join(rows, "\n")),
		scrollbar,
	)
}

// renderRow renders one tree row: indentation, an expansion marker for
// containers, and the label colored by value kind.
func (model Model) renderRow(row Row, rowWidth int, selected, isResult bool, now time.Time) string {
	indent := strings.Repeat("  ", row.Depth)

	marker := "  "
	if container, ok := row.Node.(*jsontree.Container); ok && !container.IsLeaf() {
		if model.expanded[container] {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}

	label := row.Node.Label()
	text := indent + marker + label
	if ansi.StringWidth(text) > rowWidth {
		text = ansi.Truncate(text, rowWidth-1, "…")
	}

	if selected {
		return lipgloss.NewStyle().
			Background(model.theme.SelectedBackground).
			Foreground(model.theme.SelectedForeground).
			Width(rowWidth).
			MaxWidth(rowWidth).
			Render(text)
	}

	style := lipgloss.NewStyle().Foreground(model.rowColor(row.Node))
	rendered := style.Render(text)

	if isResult {
		return lipgloss.NewStyle().
			Background(model.theme.SearchHighlightBackground).
			Width(rowWidth).
			MaxWidth(rowWidth).
			Render(rendered)
	}

	// Heat tint for recently-changed rows (selection highlight takes
	// priority so hot styling is skipped there).
	if heat := model.heatTracker.Heat(RowID(row.Node), now); heat > 0 {
		accentColor := model.theme.HotAccentPut
		if model.heatTracker.Kind(RowID(row.Node)) == tui.HeatRemove {
			accentColor = model.theme.HotAccentRemove
		}
		return lipgloss.NewStyle().
			Background(accentColor).
			Width(rowWidth).
			MaxWidth(rowWidth).
			Render(rendered)
	}

	return rendered
}

// rowColor picks the display color for a node by its mirrored value.
func (model Model) rowColor(node jsontree.Node) lipgloss.Color {
	leaf, ok := node.(*jsontree.Leaf)
	if !ok {
		return model.theme.BranchForeground
	}
	if leaf.IsPlaceholder() {
		return model.theme.FaintText
	}
	switch leaf.Value().(type) {
	case *jsondoc.String:
		return model.theme.StringForeground
	case *jsondoc.Number:
		return model.theme.NumberForeground
	case *jsondoc.Bool, *jsondoc.Null:
		return model.theme.LiteralForeground
	default:
		return model.theme.NormalText
	}
}

// renderEditRow renders the row under inline edit: the buffer with a
// block cursor, replacing the node label.
func (model Model) renderEditRow(row Row, rowWidth int) string {
	indent := strings.Repeat("  ", row.Depth)

	textStyle := lipgloss.NewStyle().
		Background(model.theme.SelectedBackground).
		Foreground(model.theme.SelectedForeground)
	cursorStyle := lipgloss.NewStyle().Reverse(true)

	var line string
	if model.editCursor >= len(model.editBuffer) {
		line = textStyle.Render(indent+"  "+string(model.editBuffer)) + cursorStyle.Render(" ")
	} else {
		before := textStyle.Render(indent + "  " + string(model.editBuffer[:model.editCursor]))
		atCursor := cursorStyle.Render(string(model.editBuffer[model.editCursor : model.editCursor+1]))
		after := textStyle.Render(string(model.editBuffer[model.editCursor+1:]))
		line = before + atCursor + after
	}

	return lipgloss.NewStyle().
		Background(model.theme.SelectedBackground).
		Width(rowWidth).
		MaxWidth(rowWidth).
		Render(line)
}

func (model Model) renderDivider() string {
	visible := model.visibleHeight()
	if visible < 0 {
		visible = 0
	}

	dividerStyle := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor)

	lines := make([]string, visible)
	for index := range lines {
		lines[index] = "│"
	}

	return dividerStyle.Width(1).Height(visible).Render(strings.Join(lines, "\n"))
}

// renderRightPane shows the results list while a find-all is running
// or has results, and the preview of the selected subtree otherwise.
func (model Model) renderRightPane(width int) string {
	if len(model.results) > 0 || model.searching {
		return model.renderResultsPane(width)
	}
	return model.renderPreviewPane(width)
}

func (model Model) renderResultsPane(width int) string {
	visible := model.visibleHeight()
	if visible < 0 {
		visible = 0
	}
	focused := model.focusRegion == FocusResults

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	faintStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText)

	title := titleStyle.Render(" Matches")
	if model.searching {
		title += faintStyle.Render(" (searching…)")
	} else if model.resultsTotal > len(model.results) {
		title += faintStyle.Render(fmt.Sprintf(" (showing %d of %d)", len(model.results), model.resultsTotal))
	}

	rowWidth := width - 1
	lines := []string{title}
	listHeight := visible - 1
	for index := model.resultsScroll; index < model.resultsScroll+listHeight && index < len(model.results); index++ {
		node := model.results[index]
		text := " " + RowID(node)
		if ansi.StringWidth(text) > rowWidth {
			text = ansi.Truncate(text, rowWidth-1, "…")
		}
		if focused && index == model.resultsCursor {
			lines = append(lines, lipgloss.NewStyle().
				Background(model.theme.SelectedBackground).
				Foreground(model.theme.SelectedForeground).
				Width(rowWidth).
				MaxWidth(rowWidth).
				Render(text))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(model.theme.NormalText).
				Render(text))
		}
	}

	scrollbar := tui.RenderScrollbar(
		model.theme, visible,
		len(model.results)+1, visible, model.resultsScroll,
		focused,
	)

	contentStyle := lipgloss.NewStyle().
		Width(rowWidth).
		Height(visible).
		MaxWidth(rowWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		contentStyle.Render(strings.Join(lines, "\n")),
		scrollbar,
	)
}

func (model Model) renderPreviewPane(width int) string {
	visible := model.visibleHeight()
	if visible < 0 {
		visible = 0
	}

	var value jsondoc.Value
	if node := model.currentNode(); node != nil {
		value = node.Value()
	}
	if value == nil && model.session != nil {
		value = model.session.Document()
	}

	preview := RenderPreview(value, model.cfg.UI.PreviewLimit, model.theme)
	previewLines := strings.Split(preview, "\n")
	if len(previewLines) > visible {
		previewLines = previewLines[:visible]
	}
	for index, line := range previewLines {
		if ansi.StringWidth(line) > width {
			previewLines[index] = ansi.Truncate(line, width-1, "…")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(visible).
		MaxWidth(width).
		Render(strings.Join(previewLines, "\n"))
}

// renderStatusBar renders the bottom line: an error or notice if one
// is pending, otherwise the key help.
func (model Model) renderStatusBar() string {
	if model.statusError != "" {
		return lipgloss.NewStyle().
			Foreground(model.theme.ErrorForeground).
			Width(model.width).
			MaxWidth(model.width).
			Render(" " + model.statusError)
	}
	if model.statusNotice != "" {
		return lipgloss.NewStyle().
			Foreground(model.theme.NormalText).
			Width(model.width).
			MaxWidth(model.width).
			Render(" " + model.statusNotice)
	}

	help := " j/k move  l expand  h collapse  e edit  d delete  u undo  / find  n next  F find all  C-j jump  C-s save  q quit"
	return lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Width(model.width).
		MaxWidth(model.width).
		Render(help)
}

// renderJumpPalette renders the fuzzy jump overlay: the query line on
// top of the candidate list, all at a consistent width.
func (model Model) renderJumpPalette() []string {
	listWidth := model.jump.Width()

	inputStyle := lipgloss.NewStyle().
		Foreground(model.theme.ModalForeground).
		Background(model.theme.ModalBackground)
	cursorStyle := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Background(model.theme.ModalBackground).
		Bold(true)

	input := inputStyle.Render(" > "+model.jumpInput) + cursorStyle.Render("▎")
	inputWidth := ansi.StringWidth(input)
	if inputWidth < listWidth {
		input += inputStyle.Render(strings.Repeat(" ", listWidth-inputWidth))
	}

	lines := []string{input}
	if len(model.jump.Options) == 0 {
		empty := inputStyle.Render(" (no matching keys)")
		emptyWidth := ansi.StringWidth(empty)
		if emptyWidth < listWidth {
			empty += inputStyle.Render(strings.Repeat(" ", listWidth-emptyWidth))
		}
		lines = append(lines, empty)
		return lines
	}
	return append(lines, model.jump.Render(model.theme)...)
}
