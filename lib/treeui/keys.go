// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package treeui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the tree editor TUI.
type KeyMap struct {
	// Navigation (context-sensitive: tree movement or results list
	// movement depending on current focus).
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding // Collapse container / go to parent.
	Right    key.Binding // Expand container.
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Focus switching between the tree and the results pane.
	FocusToggle key.Binding

	// Mutations.
	Edit   key.Binding // Edit the selected leaf inline.
	Delete key.Binding // Delete the selected node (with confirmation).
	Undo   key.Binding // Restore the pre-delete snapshot.
	Save   key.Binding // Write the document back to its file.

	// Search.
	FindActivate key.Binding // Enter the find input.
	FindNext     key.Binding // Jump to the next match of the current query.
	FindAll      key.Binding // Stream every match into the results pane.

	// Fuzzy jump to an object key anywhere in the document.
	Jump key.Binding

	// Right pane.
	PreviewToggle key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys and page up/down.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch pane"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "save"),
	),
	FindActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "find"),
	),
	FindNext: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next match"),
	),
	FindAll: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "find all"),
	),
	Jump: key.NewBinding(
		key.WithKeys("ctrl+j"),
		key.WithHelp("C-j", "jump to key"),
	),
	PreviewToggle: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "preview"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
