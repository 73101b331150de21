// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"context"
	"strings"

	"github.com/arbor-foundation/arbor/lib/jsontree"
)

// Engine holds the find-next cursor for one display tree. The zero
// value is not usable; construct with New.
//
// The cursor is the last node FindFirst matched. It is cleared by
// Invalidate (called by the editor after any structural mutation) and
// by SetRoot when undo rebuilds the tree.
type Engine struct {
	root   *jsontree.Container
	cursor jsontree.Node
}

// New builds an engine over the given tree root.
func New(root *jsontree.Container) *Engine {
	return &Engine{root: root}
}

// SetRoot points the engine at a new tree root and clears the cursor.
func (e *Engine) SetRoot(root *jsontree.Container) {
	e.root = root
	e.cursor = nil
}

// Invalidate clears the find-next cursor. Called after delete and
// undo: the matched node may no longer be part of the live tree, and
// resuming "after" a detached node would silently skip real matches.
func (e *Engine) Invalidate() {
	e.cursor = nil
}

// Cursor returns the node the next FindFirst will resume after, or
// nil when the next search starts from the top.
func (e *Engine) Cursor() jsontree.Node { return e.cursor }

// FindFirst returns the next node whose label contains query
// (case-insensitive), scanning breadth-first from the root and
// resuming after the previous match. When the scan reaches the end
// with a cursor armed, the cursor is cleared and the scan retried
// once from the top — wrap-around. Returns nil when the document has
// no match at all, or when query is empty (empty query is a no-op:
// no traversal, no cursor change).
func (e *Engine) FindFirst(query string) jsontree.Node {
	if query == "" || e.root == nil {
		return nil
	}
	lowered := strings.ToLower(query)

	if match := e.scan(lowered); match != nil {
		e.cursor = match
		return match
	}
	if e.cursor == nil {
		return nil
	}

	// Wrap-around: one retry from the top with the cursor cleared.
	e.cursor = nil
	if match := e.scan(lowered); match != nil {
		e.cursor = match
		return match
	}
	return nil
}

// scan runs one breadth-first pass, skipping every node up to and
// including the armed cursor, and returns the first match after it.
func (e *Engine) scan(lowered string) jsontree.Node {
	skipping := e.cursor != nil
	queue := []jsontree.Node{e.root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if container, ok := node.(*jsontree.Container); ok {
			queue = append(queue, container.Children()...)
		}

		if skipping {
			if node == e.cursor {
				skipping = false
			}
			continue
		}
		if matches(node, lowered) {
			return node
		}
	}
	return nil
}

// FindAll runs one breadth-first pass over the whole tree and streams
// every match to visit in discovery order, as found — not batched —
// so the caller can render progress. Returns the number of matches
// delivered.
//
// Cancellation is cooperative: ctx is polled once per visited node,
// and on cancellation no further nodes are visited or loaded; matches
// already delivered stand. An empty query performs no traversal and
// returns zero.
func (e *Engine) FindAll(ctx context.Context, query string, visit func(jsontree.Node)) int {
	if query == "" || e.root == nil {
		return 0
	}
	lowered := strings.ToLower(query)

	count := 0
	queue := []jsontree.Node{e.root}
	for len(queue) > 0 {
		if ctx.Err() != nil {
			return count
		}
		node := queue[0]
		queue = queue[1:]

		if container, ok := node.(*jsontree.Container); ok {
			queue = append(queue, container.Children()...)
		}

		if matches(node, lowered) {
			count++
			if visit != nil {
				visit(node)
			}
		}
	}
	return count
}

// matches tests one node. Placeholder leaves are display furniture and
// never count.
func matches(node jsontree.Node, loweredQuery string) bool {
	if leaf, ok := node.(*jsontree.Leaf); ok && leaf.IsPlaceholder() {
		return false
	}
	return strings.Contains(strings.ToLower(node.Label()), loweredQuery)
}
