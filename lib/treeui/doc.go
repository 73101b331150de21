// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

// Package treeui implements the interactive tree editor TUI. The model
// renders the lazy display tree as a flat list of rows, with a right
// pane showing either a syntax-highlighted preview of the selected
// subtree or streamed find-all results.
//
// All mutation goes through the editor session, and all long-running
// work (find-all) goes through the editor runner, so at most one
// background task touches the tree at a time. Results come back into
// the bubbletea message loop over a channel, one message per match.
package treeui
