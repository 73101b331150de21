// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package jsontree

import (
	"regexp"
	"strings"

	"github.com/arbor-foundation/arbor/lib/jsondoc"
)

// integerPattern is the only numeric form SetValue recognizes. Plain
// integers cover the overwhelming majority of hand edits; anything
// else (floats, exponents) falls through to string, which is the
// documented lossy simplification of label-based editing.
var integerPattern = regexp.MustCompile(`^-?[0-9]+$`)

// Leaf is a tree node mirroring one scalar value, editable through its
// display label. It holds a non-owning reference to the parent
// container value plus the link locating the scalar inside it.
type Leaf struct {
	label  string
	parent Node

	// container is the parent jsondoc value the scalar lives in. Nil
	// for display-only leaves.
	container jsondoc.Value

	link  jsondoc.Link
	value jsondoc.Value

	placeholder bool
}

// newValueLeaf builds an editable leaf for a scalar child of container.
func newValueLeaf(container jsondoc.Value, link jsondoc.Link, value jsondoc.Value, label string) *Leaf {
	return &Leaf{label: label, container: container, link: link, value: value}
}

// newPlaceholderLeaf builds the display-only child of an empty
// container.
func newPlaceholderLeaf() *Leaf {
	return &Leaf{label: PlaceholderLabel, placeholder: true}
}

// newTextLeaf builds the display-only child shown under a scalar-root
// container.
func newTextLeaf(value jsondoc.Value) *Leaf {
	return &Leaf{label: jsondoc.ScalarText(value), value: value}
}

// Label returns the current display text.
func (l *Leaf) Label() string { return l.label }

// Parent returns the owning node.
func (l *Leaf) Parent() Node { return l.parent }

// IsLeaf always reports true.
func (l *Leaf) IsLeaf() bool { return true }

// Link locates the mirrored scalar within its parent container.
func (l *Leaf) Link() jsondoc.Link { return l.link }

// Value returns the mirrored scalar, or nil for placeholders.
func (l *Leaf) Value() jsondoc.Value { return l.value }

// Container returns the parent jsondoc value, or nil for display-only
// leaves.
func (l *Leaf) Container() jsondoc.Value { return l.container }

// IsPlaceholder reports whether this is the synthetic empty-container
// leaf.
func (l *Leaf) IsPlaceholder() bool { return l.placeholder }

// Editable reports whether SetValue writes through to the document.
func (l *Leaf) Editable() bool { return l.container != nil }

func (l *Leaf) setParent(parent Node) { l.parent = parent }

// SetValue applies an edited label to the mirrored scalar and returns
// the recomputed label. The input is the full edited text as displayed;
// anything up to and including the first colon is the label prefix and
// is stripped before inference.
//
// Scalar inference is deterministic and total, in precedence order:
// an exact -?[0-9]+ match becomes an integer, case-insensitive
// true/false a boolean, case-insensitive null the null literal, and
// everything else a string, verbatim. There is no reject path — a
// float or a quoted "true" simply becomes a string. This mirrors the
// lossy nature of editing through display text.
//
// Display-only leaves ignore the edit and return their label unchanged.
func (l *Leaf) SetValue(raw string) string {
	if !l.Editable() {
		return l.label
	}

	text := raw
	if colon := strings.Index(text, ":"); colon >= 0 {
		text = text[colon+1:]
	}
	text = strings.TrimSpace(text)

	var value jsondoc.Value
	switch {
	case integerPattern.MatchString(text):
		value = &jsondoc.Number{Raw: text}
	case strings.EqualFold(text, "true"):
		value = &jsondoc.Bool{Value: true}
	case strings.EqualFold(text, "false"):
		value = &jsondoc.Bool{Value: false}
	case strings.EqualFold(text, "null"):
		value = &jsondoc.Null{}
	default:
		value = &jsondoc.String{Value: text}
	}

	jsondoc.Replace(l.container, l.link, value)
	l.value = value

	if l.link.IsMember() {
		l.label = memberLabel(l.link.Key(), value)
	} else {
		l.label = elementLabel(l.link.Index(), value)
	}
	return l.label
}
