// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package jsondoc

import "strconv"

// linkKind discriminates the two ways a child relates to its parent.
type linkKind uint8

const (
	linkMember linkKind = iota
	linkElement
)

// Link identifies how a child value hangs off its parent container:
// either as an object member (by key) or as an array element (by
// index). Links are the only addressing used by Get, Replace, and
// Remove — there is no path syntax at this layer.
//
// A Link is a hint, not a guarantee: after earlier removals an element
// index may have drifted, and a member key may have been renamed.
// Remove compensates with an identity scan; see Remove.
type Link struct {
	kind  linkKind
	key   string
	index int
}

// MemberLink addresses an object member by key.
func MemberLink(key string) Link {
	return Link{kind: linkMember, key: key}
}

// ElementLink addresses an array element by index.
func ElementLink(index int) Link {
	return Link{kind: linkElement, index: index}
}

// IsMember reports whether the link addresses an object member.
func (l Link) IsMember() bool { return l.kind == linkMember }

// Key returns the member key. Meaningful only when IsMember is true.
func (l Link) Key() string { return l.key }

// Index returns the element index. Meaningful only when IsMember is
// false.
func (l Link) Index() int { return l.index }

// String renders the link the way the display tree labels it: the
// bare key for members, "[i]" for elements.
func (l Link) String() string {
	if l.kind == linkMember {
		return l.key
	}
	return "[" + strconv.Itoa(l.index) + "]"
}
