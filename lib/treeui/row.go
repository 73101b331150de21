// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package treeui

import (
	"strings"

	"github.com/arbor-foundation/arbor/lib/jsontree"
)

// Row is a single visible line of the tree pane: a node and its
// indentation depth.
type Row struct {
	Node  jsontree.Node
	Depth int
}

// FlattenTree produces the visible row list by walking loaded
// containers depth-first, descending only into those the user has
// expanded. Expanding a container materializes its children (one
// level) as a side effect of Children.
func FlattenTree(root *jsontree.Container, expanded map[jsontree.Node]bool) []Row {
	var rows []Row
	var walk func(node jsontree.Node, depth int)
	walk = func(node jsontree.Node, depth int) {
		rows = append(rows, Row{Node: node, Depth: depth})
		container, ok := node.(*jsontree.Container)
		if !ok || !expanded[node] {
			return
		}
		for _, child := range container.Children() {
			walk(child, depth+1)
		}
	}
	walk(root, 0)
	return rows
}

// RowID builds a stable identifier from the node's label path, used
// for heat tracking across re-renders. Paths are not guaranteed unique
// for exotic documents (duplicate labels), which only costs a shared
// glow, never correctness.
func RowID(node jsontree.Node) string {
	return strings.Join(jsontree.Path(node), "/")
}
