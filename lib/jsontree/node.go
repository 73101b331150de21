// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package jsontree

import (
	"strconv"

	"github.com/arbor-foundation/arbor/lib/jsondoc"
)

// Node is one entry of the display tree. Implementations are *Container
// and *Leaf; interface equality is node identity.
type Node interface {
	// Label returns the current display text.
	Label() string

	// Parent returns the owning node, or nil at the root. The
	// reference is navigation-only — used to rebuild paths, never to
	// traverse downward or to manage lifetime.
	Parent() Node

	// IsLeaf reports whether the node can have no children.
	IsLeaf() bool

	// Link locates the mirrored value within its parent container.
	// Meaningless at the root.
	Link() jsondoc.Link

	// Value returns the mirrored document value. Nil for display-only
	// leaves (placeholders and scalar-root text nodes).
	Value() jsondoc.Value

	setParent(parent Node)
}

// Path returns the labels from the root down to node, inclusive.
func Path(node Node) []string {
	var reversed []string
	for current := node; current != nil; current = current.Parent() {
		reversed = append(reversed, current.Label())
	}
	labels := make([]string, len(reversed))
	for index := range reversed {
		labels[index] = reversed[len(reversed)-1-index]
	}
	return labels
}

// memberLabel renders an object member's label.
func memberLabel(key string, value jsondoc.Value) string {
	if jsondoc.IsScalar(value) {
		return key + ": " + jsondoc.ScalarText(value)
	}
	return key
}

// elementLabel renders an array element's label.
func elementLabel(index int, value jsondoc.Value) string {
	position := "[" + strconv.Itoa(index) + "]"
	if jsondoc.IsScalar(value) {
		return position + ": " + jsondoc.ScalarText(value)
	}
	return position
}
