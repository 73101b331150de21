// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package treeui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/junegunn/fzf/src/util"

	"github.com/arbor-foundation/arbor/lib/config"
	"github.com/arbor-foundation/arbor/lib/editor"
	"github.com/arbor-foundation/arbor/lib/jsondoc"
	"github.com/arbor-foundation/arbor/lib/jsontree"
	"github.com/arbor-foundation/arbor/lib/tui"
)

// FocusRegion identifies which part of the UI has keyboard focus.
type FocusRegion int

const (
	// FocusTree means navigation keys move the tree cursor.
	FocusTree FocusRegion = iota
	// FocusResults means navigation keys move the results cursor.
	FocusResults
	// FocusFind means keystrokes go to the find input.
	FocusFind
	// FocusEdit means the selected leaf is being edited inline.
	// Character input modifies the edit buffer, enter submits,
	// escape cancels.
	FocusEdit
	// FocusConfirm means the delete confirmation modal is active.
	FocusConfirm
	// FocusJump means the fuzzy jump palette is active. All keyboard
	// input routes to it until the user picks a target or dismisses it.
	FocusJump
)

// jumpPaletteHeight caps the number of targets shown in the jump
// palette at once.
const jumpPaletteHeight = 12

// statusFadeDelay is how long status notices stay visible.
const statusFadeDelay = 3 * time.Second

// searchEventMsg delivers one find-all match (or the final count)
// through the bubbletea message loop.
type searchEventMsg struct {
	node  jsontree.Node
	done  bool
	count int
}

// heatTickMsg is sent periodically to drive the heat decay animation.
// While any rows are hot, a new tick is scheduled after each one.
type heatTickMsg struct{}

// statusFadeMsg is sent after a delay to clear the status notice.
type statusFadeMsg struct{}

// saveDoneMsg reports the outcome of the background write phase of a
// save. On success the coordinating context commits the save.
type saveDoneMsg struct {
	path string
	size int64
	err  error
}

// Model is the top-level bubbletea model for the tree editor TUI.
type Model struct {
	session *editor.Session
	runner  *editor.Runner
	cfg     *config.Config
	theme   tui.Theme
	keys    KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Tree pane state. rows is the flattened visible tree; expanded
	// tracks which containers the user has opened.
	rows         []Row
	expanded     map[jsontree.Node]bool
	cursor       int
	scrollOffset int

	focusRegion FocusRegion

	find FindModel

	// Find-all results pane. results holds at most
	// cfg.UI.ResultsLimit nodes; resultsTotal is the full match count
	// reported by the engine.
	results       []jsontree.Node
	resultsCursor int
	resultsScroll int
	resultsTotal  int
	searching     bool
	searchEvents  chan searchEventMsg

	saving bool

	// Inline leaf edit.
	editBuffer []rune
	editCursor int
	editLeaf   *jsontree.Leaf

	// Delete confirmation.
	confirm     *tui.ConfirmModal
	confirmNode jsontree.Node

	// Fuzzy jump palette.
	jump        *tui.ListOverlay
	jumpInput   string
	jumpTargets []KeyTarget
	slab        *util.Slab

	heatTracker *tui.HeatTracker

	// Status bar feedback. statusError renders in the error color and
	// outlives notices (no fade) until the next action clears it.
	statusNotice string
	statusError  string

	showPreview bool
}

// NewModel creates a tree editor model over a loaded session.
func NewModel(session *editor.Session, runner *editor.Runner, cfg *config.Config) Model {
	model := Model{
		session:     session,
		runner:      runner,
		cfg:         cfg,
		theme:       tui.DefaultTheme,
		keys:        DefaultKeyMap,
		expanded:    make(map[jsontree.Node]bool),
		slab:        util.MakeSlab(100*1024, 2048),
		heatTracker: tui.NewHeatTracker(),
		showPreview: cfg.UI.ShowPreview,
	}
	if root := session.Root(); root != nil {
		model.expanded[root] = true
		model.rows = FlattenTree(root, model.expanded)
	}
	return model
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return nil
}

// Query returns the current find query, for persisting across runs.
func (model Model) Query() string {
	return model.find.Input
}

// SetQuery seeds the find query, typically from persisted UI state.
func (model *Model) SetQuery(query string) {
	model.find.Input = query
}

// listenForSearchEvent returns a tea.Cmd that blocks until the next
// find-all event arrives, then delivers it into the message loop.
func listenForSearchEvent(channel <-chan searchEventMsg) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-channel
		if !ok {
			return nil
		}
		return event
	}
}

// Update implements tea.Model. Routes keyboard events based on the
// current focus region and handles layout changes.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		// Modal focus regions capture all input.
		switch model.focusRegion {
		case FocusFind:
			return model.handleFindKeys(message)
		case FocusEdit:
			return model.handleEditKeys(message)
		case FocusConfirm:
			return model.handleConfirmKeys(message)
		case FocusJump:
			return model.handleJumpKeys(message)
		}

		switch {
		case key.Matches(message, model.keys.Quit):
			model.runner.Cancel()
			return model, tea.Quit

		case message.Type == tea.KeyEscape && model.searching:
			// The scan stops at the next visited node; matches
			// delivered so far stand. The done event still arrives
			// and clears the searching flag.
			model.runner.Cancel()
			model.statusNotice = "search cancelled"

		case key.Matches(message, model.keys.FocusToggle):
			if model.focusRegion == FocusTree && len(model.results) > 0 {
				model.focusRegion = FocusResults
			} else {
				model.focusRegion = FocusTree
			}

		case key.Matches(message, model.keys.FindActivate):
			model.find.Active = true
			model.focusRegion = FocusFind
			model.statusError = ""

		case key.Matches(message, model.keys.FindNext):
			model.findNext()

		case key.Matches(message, model.keys.FindAll):
			return model.startFindAll()

		case key.Matches(message, model.keys.Jump):
			model.openJumpPalette()

		case key.Matches(message, model.keys.PreviewToggle):
			model.showPreview = !model.showPreview

		case key.Matches(message, model.keys.Save):
			return model.saveDocument()

		case key.Matches(message, model.keys.Undo):
			return model.undoDelete()

		case key.Matches(message, model.keys.Delete):
			return model.requestDelete()

		case key.Matches(message, model.keys.Edit):
			if model.focusRegion == FocusResults {
				model.revealResult()
			} else {
				model.startEdit()
			}

		default:
			if model.focusRegion == FocusResults {
				model.handleResultsKeys(message)
			} else {
				model.handleTreeKeys(message)
			}
		}

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.ensureCursorVisible()

	case searchEventMsg:
		return model.handleSearchEvent(message)

	case saveDoneMsg:
		return model.handleSaveDone(message)

	case heatTickMsg:
		return model.handleHeatTick()

	case statusFadeMsg:
		model.statusNotice = ""
	}
	return model, nil
}

// --- tree navigation ---

func (model *Model) handleTreeKeys(message tea.KeyMsg) {
	switch {
	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.cursor < len(model.rows)-1 {
			model.cursor++
		}
	case key.Matches(message, model.keys.PageUp):
		model.cursor -= model.visibleHeight()
		if model.cursor < 0 {
			model.cursor = 0
		}
	case key.Matches(message, model.keys.PageDown):
		model.cursor += model.visibleHeight()
		if model.cursor > len(model.rows)-1 {
			model.cursor = len(model.rows) - 1
		}
	case key.Matches(message, model.keys.Home):
		model.cursor = 0
	case key.Matches(message, model.keys.End):
		model.cursor = len(model.rows) - 1
	case key.Matches(message, model.keys.Right):
		model.expandCursor()
	case key.Matches(message, model.keys.Left):
		model.collapseOrGoToParent()
	}
	model.ensureCursorVisible()
}

func (model *Model) currentNode() jsontree.Node {
	if model.cursor < 0 || model.cursor >= len(model.rows) {
		return nil
	}
	return model.rows[model.cursor].Node
}

// expandCursor opens the container under the cursor, materializing
// its children. A running find-all owns the tree (its traversal loads
// children as it goes), so expansion is rejected until it finishes.
func (model *Model) expandCursor() {
	if model.runner.Busy() {
		model.statusError = "busy: a background task is still running"
		return
	}
	container, ok := model.currentNode().(*jsontree.Container)
	if !ok || container.IsLeaf() {
		return
	}
	model.expanded[container] = true
	model.rebuildRows()
}

// collapseOrGoToParent closes the container under the cursor, or moves
// to the parent when the cursor is on a leaf or a closed container.
// Collapsing re-flattens the tree, which reads load state the running
// find-all writes, so it waits like expansion does.
func (model *Model) collapseOrGoToParent() {
	node := model.currentNode()
	if node == nil {
		return
	}
	if container, ok := node.(*jsontree.Container); ok && model.expanded[container] {
		if model.runner.Busy() {
			model.statusError = "busy: a background task is still running"
			return
		}
		delete(model.expanded, container)
		model.rebuildRows()
		return
	}
	parent := node.Parent()
	if parent == nil {
		return
	}
	for index, row := range model.rows {
		if row.Node == parent {
			model.cursor = index
			return
		}
	}
}

// rebuildRows re-flattens the tree and clamps the cursor.
func (model *Model) rebuildRows() {
	root := model.session.Root()
	if root == nil {
		model.rows = nil
		model.cursor = 0
		return
	}
	model.rows = FlattenTree(root, model.expanded)
	if model.cursor > len(model.rows)-1 {
		model.cursor = len(model.rows) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
	model.ensureCursorVisible()
}

// revealNode expands every ancestor of node and moves the cursor to it.
func (model *Model) revealNode(node jsontree.Node) {
	for ancestor := node.Parent(); ancestor != nil; ancestor = ancestor.Parent() {
		model.expanded[ancestor] = true
	}
	model.rebuildRows()
	for index, row := range model.rows {
		if row.Node == node {
			model.cursor = index
			break
		}
	}
	model.ensureCursorVisible()
}

// --- find ---

func (model Model) handleFindKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEnter:
		model.find.Active = false
		model.focusRegion = FocusTree
		model.findNext()
	case tea.KeyEscape:
		model.find.Clear()
		model.focusRegion = FocusTree
	case tea.KeyBackspace:
		model.find.HandleBackspace()
	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			model.find.HandleRune(character)
		}
	}
	return model, nil
}

// findNext asks the engine for the next match of the current query
// and reveals it. A query with no matches anywhere reports in the
// status bar.
func (model *Model) findNext() {
	if model.find.Input == "" {
		return
	}
	if model.runner.Busy() {
		model.statusError = "busy: a background task is still running"
		return
	}
	match := model.session.FindFirst(model.find.Input)
	if match == nil {
		model.statusNotice = fmt.Sprintf("no match for %q", model.find.Input)
		return
	}
	model.revealNode(match)
	model.focusRegion = FocusTree
}

// startFindAll launches the background scan. The task streams each
// match through searchEvents; the final event carries the full count.
func (model Model) startFindAll() (tea.Model, tea.Cmd) {
	if model.find.Input == "" {
		model.statusNotice = "enter a query with / first"
		return model, nil
	}

	channel := make(chan searchEventMsg, 64)
	query := model.find.Input
	session := model.session
	err := model.runner.Go(context.Background(), func(ctx context.Context) {
		count := session.FindAll(ctx, query, func(node jsontree.Node) {
			select {
			case channel <- searchEventMsg{node: node}:
			case <-ctx.Done():
			}
		})
		channel <- searchEventMsg{done: true, count: count}
		close(channel)
	}, nil)
	if errors.Is(err, editor.ErrBusy) {
		model.statusError = "busy: a background task is still running"
		return model, nil
	}

	model.results = nil
	model.resultsCursor = 0
	model.resultsScroll = 0
	model.resultsTotal = 0
	model.searching = true
	model.searchEvents = channel
	model.statusError = ""
	return model, listenForSearchEvent(channel)
}

func (model Model) handleSearchEvent(event searchEventMsg) (tea.Model, tea.Cmd) {
	if event.done {
		model.searching = false
		model.resultsTotal = event.count
		model.statusNotice = fmt.Sprintf("%d matches", event.count)
		if len(model.results) > 0 {
			model.focusRegion = FocusResults
		}
		return model, tea.Tick(statusFadeDelay, func(time.Time) tea.Msg {
			return statusFadeMsg{}
		})
	}

	if len(model.results) < model.cfg.UI.ResultsLimit {
		model.results = append(model.results, event.node)
	}
	return model, listenForSearchEvent(model.searchEvents)
}

func (model *Model) handleResultsKeys(message tea.KeyMsg) {
	switch {
	case key.Matches(message, model.keys.Up):
		if model.resultsCursor > 0 {
			model.resultsCursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.resultsCursor < len(model.results)-1 {
			model.resultsCursor++
		}
	case key.Matches(message, model.keys.Home):
		model.resultsCursor = 0
	case key.Matches(message, model.keys.End):
		model.resultsCursor = len(model.results) - 1
	}
	model.ensureResultsVisible()
}

// revealResult jumps the tree cursor to the selected result. Revealing
// expands ancestors, so it waits for any running background task just
// like expansion does.
func (model *Model) revealResult() {
	if model.runner.Busy() {
		model.statusError = "busy: a background task is still running"
		return
	}
	if model.resultsCursor < 0 || model.resultsCursor >= len(model.results) {
		return
	}
	model.revealNode(model.results[model.resultsCursor])
	model.focusRegion = FocusTree
}

// --- mutations ---

// requestDelete opens the confirmation modal for the selected node, or
// deletes immediately when confirmation is disabled.
func (model Model) requestDelete() (tea.Model, tea.Cmd) {
	if model.runner.Busy() {
		model.statusError = "busy: a background task is still running"
		return model, nil
	}
	node := model.currentNode()
	if node == nil {
		return model, nil
	}
	if node.Parent() == nil {
		model.statusError = "cannot delete the document root"
		return model, nil
	}
	if leaf, ok := node.(*jsontree.Leaf); ok && leaf.IsPlaceholder() {
		return model, nil
	}

	if !model.cfg.Editor.ConfirmDelete {
		return model.deleteNode(node)
	}

	modal := tui.NewConfirmModal("Delete node", node.Label(), model.theme)
	model.confirm = &modal
	model.confirmNode = node
	model.focusRegion = FocusConfirm
	return model, nil
}

func (model Model) handleConfirmKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.String() {
	case "y", "enter":
		node := model.confirmNode
		model.confirm = nil
		model.confirmNode = nil
		model.focusRegion = FocusTree
		return model.deleteNode(node)
	case "n", "esc":
		model.confirm = nil
		model.confirmNode = nil
		model.focusRegion = FocusTree
	}
	return model, nil
}

// deleteNode performs the delete and updates the view. Results are
// dropped: detached nodes must not be revealed later.
func (model Model) deleteNode(node jsontree.Node) (tea.Model, tea.Cmd) {
	parentID := ""
	if parent := node.Parent(); parent != nil {
		parentID = RowID(parent)
	}

	if err := model.session.DeleteNode(node); err != nil {
		model.statusError = err.Error()
		return model, nil
	}

	delete(model.expanded, node)
	model.results = nil
	model.resultsCursor = 0
	model.resultsTotal = 0
	model.statusError = ""
	model.statusNotice = "deleted " + node.Label()
	model.rebuildRows()

	model.heatTracker.Ignite(parentID, tui.HeatRemove, time.Now())
	return model, tea.Batch(
		tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg { return heatTickMsg{} }),
		tea.Tick(statusFadeDelay, func(time.Time) tea.Msg { return statusFadeMsg{} }),
	)
}

// undoDelete restores the snapshot and rebuilds the view over the
// fresh tree. The expansion map resets: the rebuilt tree has all-new
// nodes, so only the root starts open.
func (model Model) undoDelete() (tea.Model, tea.Cmd) {
	if model.runner.Busy() {
		model.statusError = "busy: a background task is still running"
		return model, nil
	}
	if err := model.session.Undo(); err != nil {
		if errors.Is(err, editor.ErrUndoUnavailable) {
			model.statusNotice = "nothing to undo"
		} else {
			model.statusError = err.Error()
		}
		return model, nil
	}

	model.expanded = make(map[jsontree.Node]bool)
	if root := model.session.Root(); root != nil {
		model.expanded[root] = true
	}
	model.cursor = 0
	model.scrollOffset = 0
	model.results = nil
	model.resultsCursor = 0
	model.resultsTotal = 0
	model.statusError = ""
	model.statusNotice = "undo: document restored"
	model.rebuildRows()

	model.heatTracker.Ignite(RowID(model.session.Root()), tui.HeatPut, time.Now())
	return model, tea.Batch(
		tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg { return heatTickMsg{} }),
		tea.Tick(statusFadeDelay, func(time.Time) tea.Msg { return statusFadeMsg{} }),
	)
}

// saveDocument encodes the document on the coordinating context, runs
// the file write on the background task slot, and commits on the done
// message.
func (model Model) saveDocument() (tea.Model, tea.Cmd) {
	if model.runner.Busy() {
		model.statusError = "busy: a background task is still running"
		return model, nil
	}
	if model.session.Path() == "" {
		model.statusError = "no file to save to"
		return model, nil
	}

	data, err := model.session.EncodeDocument()
	if err != nil {
		model.statusError = err.Error()
		return model, nil
	}

	path := model.session.Path()
	session := model.session
	channel := make(chan saveDoneMsg, 1)
	err = model.runner.Go(context.Background(), func(ctx context.Context) {
		channel <- saveDoneMsg{
			path: path,
			size: int64(len(data)),
			err:  session.WriteDocument(path, data),
		}
	}, nil)
	if errors.Is(err, editor.ErrBusy) {
		model.statusError = "busy: a background task is still running"
		return model, nil
	}

	model.saving = true
	model.statusError = ""
	return model, func() tea.Msg { return <-channel }
}

func (model Model) handleSaveDone(message saveDoneMsg) (tea.Model, tea.Cmd) {
	model.saving = false
	if message.err != nil {
		model.statusError = message.err.Error()
		return model, nil
	}
	model.session.CommitSave(message.path, message.size)
	model.statusNotice = "saved " + message.path
	return model, tea.Tick(statusFadeDelay, func(time.Time) tea.Msg {
		return statusFadeMsg{}
	})
}

// --- inline edit ---

// startEdit begins inline editing of the selected leaf. The buffer is
// seeded with the full label ("key: value"); the engine strips the
// label prefix on submit, so editing just the value part works too.
func (model *Model) startEdit() {
	if model.runner.Busy() {
		model.statusError = "busy: a background task is still running"
		return
	}
	leaf, ok := model.currentNode().(*jsontree.Leaf)
	if !ok || !leaf.Editable() {
		return
	}
	model.editLeaf = leaf
	model.editBuffer = []rune(leaf.Label())
	model.editCursor = len(model.editBuffer)
	model.focusRegion = FocusEdit
	model.statusError = ""
}

func (model Model) handleEditKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEnter:
		leaf := model.editLeaf
		model.editLeaf = nil
		model.focusRegion = FocusTree
		leaf.SetValue(string(model.editBuffer))
		model.rebuildRows()
		model.heatTracker.Ignite(RowID(leaf), tui.HeatPut, time.Now())
		return model, tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg {
			return heatTickMsg{}
		})

	case tea.KeyEscape:
		model.editLeaf = nil
		model.focusRegion = FocusTree

	case tea.KeyBackspace:
		if model.editCursor > 0 {
			model.editBuffer = append(
				model.editBuffer[:model.editCursor-1],
				model.editBuffer[model.editCursor:]...)
			model.editCursor--
		}

	case tea.KeyLeft:
		if model.editCursor > 0 {
			model.editCursor--
		}

	case tea.KeyRight:
		if model.editCursor < len(model.editBuffer) {
			model.editCursor++
		}

	case tea.KeyHome, tea.KeyCtrlA:
		model.editCursor = 0

	case tea.KeyEnd, tea.KeyCtrlE:
		model.editCursor = len(model.editBuffer)

	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			buffer := make([]rune, len(model.editBuffer)+1)
			copy(buffer, model.editBuffer[:model.editCursor])
			buffer[model.editCursor] = character
			copy(buffer[model.editCursor+1:], model.editBuffer[model.editCursor:])
			model.editBuffer = buffer
			model.editCursor++
		}
	}
	return model, nil
}

// --- fuzzy jump ---

// openJumpPalette collects every object key in the document and shows
// the palette. Typing narrows the list with fuzzy matching.
func (model *Model) openJumpPalette() {
	if model.runner.Busy() {
		model.statusError = "busy: a background task is still running"
		return
	}
	document := model.session.Document()
	if document == nil {
		return
	}
	model.jumpTargets = CollectKeyTargets(document)
	if len(model.jumpTargets) == 0 {
		model.statusNotice = "no object keys to jump to"
		return
	}
	model.jumpInput = ""
	model.jump = &tui.ListOverlay{Options: jumpOptions(model.jumpTargets)}
	model.focusRegion = FocusJump
}

// jumpOptions converts the first page of targets into palette rows.
func jumpOptions(targets []KeyTarget) []tui.ListOption {
	limit := len(targets)
	if limit > jumpPaletteHeight {
		limit = jumpPaletteHeight
	}
	options := make([]tui.ListOption, limit)
	for index := 0; index < limit; index++ {
		options[index] = tui.ListOption{
			Label: targets[index].Display,
			Value: targets[index].Display,
		}
	}
	return options
}

func (model Model) handleJumpKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEscape:
		model.jump = nil
		model.focusRegion = FocusTree
		return model, nil

	case tea.KeyEnter:
		filtered := FilterKeyTargets(model.jumpTargets, model.jumpInput, model.slab)
		if len(filtered) > 0 && model.jump.Cursor < len(filtered) {
			model.revealPath(filtered[model.jump.Cursor].Links)
		}
		model.jump = nil
		model.focusRegion = FocusTree
		return model, nil

	case tea.KeyUp:
		model.jump.MoveUp()
		return model, nil

	case tea.KeyDown:
		model.jump.MoveDown()
		return model, nil

	case tea.KeyBackspace:
		if len(model.jumpInput) > 0 {
			runes := []rune(model.jumpInput)
			model.jumpInput = string(runes[:len(runes)-1])
		}

	case tea.KeyRunes, tea.KeySpace:
		model.jumpInput += string(message.Runes)
	}

	filtered := FilterKeyTargets(model.jumpTargets, model.jumpInput, model.slab)
	model.jump.Options = jumpOptions(filtered)
	model.jump.Cursor = 0
	return model, nil
}

// revealPath walks the display tree along a link chain from the root,
// expanding and materializing each level, and puts the cursor on the
// final node.
func (model *Model) revealPath(links []jsondoc.Link) {
	var node jsontree.Node = model.session.Root()
	for _, link := range links {
		container, ok := node.(*jsontree.Container)
		if !ok {
			return
		}
		model.expanded[container] = true
		var next jsontree.Node
		for _, child := range container.Children() {
			if child.Link() == link {
				next = child
				break
			}
		}
		if next == nil {
			return
		}
		node = next
	}
	model.rebuildRows()
	for index, row := range model.rows {
		if row.Node == node {
			model.cursor = index
			break
		}
	}
	model.ensureCursorVisible()
	model.focusRegion = FocusTree
}

// --- animation ---

func (model Model) handleHeatTick() (tea.Model, tea.Cmd) {
	if !model.heatTracker.HasHot(time.Now()) {
		return model, nil
	}
	return model, tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg {
		return heatTickMsg{}
	})
}

// --- scrolling ---

// ensureCursorVisible adjusts scrollOffset so the cursor is within
// the visible window.
func (model *Model) ensureCursorVisible() {
	visible := model.visibleHeight()
	if visible <= 0 {
		return
	}

	maxOffset := len(model.rows) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if model.scrollOffset > maxOffset {
		model.scrollOffset = maxOffset
	}

	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+visible {
		model.scrollOffset = model.cursor - visible + 1
	}
}

func (model *Model) ensureResultsVisible() {
	visible := model.visibleHeight()
	if visible <= 0 {
		return
	}
	if model.resultsCursor < model.resultsScroll {
		model.resultsScroll = model.resultsCursor
	}
	if model.resultsCursor >= model.resultsScroll+visible {
		model.resultsScroll = model.resultsCursor - visible + 1
	}
}
