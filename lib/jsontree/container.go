// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package jsontree

import (
	"github.com/arbor-foundation/arbor/lib/jsondoc"
)

// PlaceholderLabel is the display text of the synthetic leaf shown
// inside empty objects and arrays. The placeholder is pure display: it
// mirrors no document value, cannot be deleted, and never counts as a
// search match.
const PlaceholderLabel = "(empty)"

// Container is a tree node mirroring an object or array (or, at the
// root only, a scalar). Children materialize on first access.
type Container struct {
	label    string
	parent   Node
	link     jsondoc.Link
	value    jsondoc.Value
	loaded   bool
	children []Node
}

// NewRoot wraps the document root in a fresh, unloaded container.
// label is typically the file name being edited.
func NewRoot(label string, value jsondoc.Value) *Container {
	return &Container{label: label, value: value}
}

// Label returns the current display text.
func (c *Container) Label() string { return c.label }

// Parent returns the owning node, or nil at the root.
func (c *Container) Parent() Node { return c.parent }

// IsLeaf reports whether the mirrored value is a scalar or missing.
// A scalar can only appear here at the root (scalar top-level
// document); everywhere else scalars become Leaf nodes.
func (c *Container) IsLeaf() bool { return jsondoc.IsScalar(c.value) }

// Link locates the mirrored value within its parent container.
func (c *Container) Link() jsondoc.Link { return c.link }

// Value returns the mirrored document subtree.
func (c *Container) Value() jsondoc.Value { return c.value }

// Loaded reports whether children have been materialized.
func (c *Container) Loaded() bool { return c.loaded }

func (c *Container) setParent(parent Node) { c.parent = parent }

// LoadChildren materializes exactly one level: the immediate children
// of the mirrored value. No-op when already loaded or when there is no
// backing value. Nested containers stay unloaded until their own first
// access.
func (c *Container) LoadChildren() {
	if c.loaded || c.value == nil {
		return
	}
	c.loaded = true
	c.children = nil

	switch value := c.value.(type) {
	case *jsondoc.Object:
		for _, member := range value.Members {
			link := jsondoc.MemberLink(member.Key)
			if jsondoc.IsScalar(member.Value) {
				c.adopt(newValueLeaf(value, link, member.Value, memberLabel(member.Key, member.Value)))
			} else {
				c.adopt(newChildContainer(member.Key, link, member.Value))
			}
		}
		if len(value.Members) == 0 {
			c.adopt(newPlaceholderLeaf())
		}
	case *jsondoc.Array:
		for index, element := range value.Elements {
			link := jsondoc.ElementLink(index)
			if jsondoc.IsScalar(element) {
				c.adopt(newValueLeaf(value, link, element, elementLabel(index, element)))
			} else {
				c.adopt(newChildContainer(elementLabel(index, element), link, element))
			}
		}
		if len(value.Elements) == 0 {
			c.adopt(newPlaceholderLeaf())
		}
	default:
		// Scalar root: one display-only leaf showing the value text.
		c.adopt(newTextLeaf(c.value))
	}
}

func newChildContainer(label string, link jsondoc.Link, value jsondoc.Value) *Container {
	return &Container{label: label, link: link, value: value}
}

func (c *Container) adopt(child Node) {
	child.setParent(c)
	c.children = append(c.children, child)
}

// ChildCount returns the number of children, materializing them first
// if needed. Structural queries are deliberately not read-only with
// respect to the loaded flag: the display layer may ask "how many
// children" without an explicit expand call.
func (c *Container) ChildCount() int {
	c.LoadChildren()
	return len(c.children)
}

// Children returns the child list, materializing it first if needed.
// The returned slice is the container's own; callers must not modify it.
func (c *Container) Children() []Node {
	c.LoadChildren()
	return c.children
}

// Detach removes child from the child list by identity. The document
// value is untouched — callers coordinate both sides (see the editor
// package). Returns false when child is not a current child.
func (c *Container) Detach(child Node) bool {
	for position, candidate := range c.children {
		if candidate == child {
			copy(c.children[position:], c.children[position+1:])
			c.children[len(c.children)-1] = nil
			c.children = c.children[:len(c.children)-1]
			return true
		}
	}
	return false
}
