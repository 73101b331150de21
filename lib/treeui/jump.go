// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package treeui

import (
	"fmt"
	"sort"

	"github.com/junegunn/fzf/src/util"

	"github.com/arbor-foundation/arbor/lib/jsondoc"
	"github.com/arbor-foundation/arbor/lib/tui"
)

// KeyTarget is one jump destination: an object member anywhere in the
// document, addressed by the link chain from the document root.
type KeyTarget struct {
	// Display is the dotted path shown in the jump palette,
	// e.g. "servers[2].host".
	Display string

	// Links is the chain of links from the document root down to the
	// member. Following it through the display tree expands every
	// ancestor on the way.
	Links []jsondoc.Link
}

// CollectKeyTargets walks the whole document value (not the lazy
// display tree, which may be mostly unloaded) and returns one target
// per object member, in document order.
func CollectKeyTargets(root jsondoc.Value) []KeyTarget {
	var targets []KeyTarget
	var walk func(value jsondoc.Value, display string, links []jsondoc.Link)
	walk = func(value jsondoc.Value, display string, links []jsondoc.Link) {
		switch value := value.(type) {
		case *jsondoc.Object:
			for _, member := range value.Members {
				memberDisplay := member.Key
				if display != "" {
					memberDisplay = display + "." + member.Key
				}
				memberLinks := append(append([]jsondoc.Link(nil), links...), jsondoc.MemberLink(member.Key))
				targets = append(targets, KeyTarget{Display: memberDisplay, Links: memberLinks})
				walk(member.Value, memberDisplay, memberLinks)
			}
		case *jsondoc.Array:
			for index, element := range value.Elements {
				elementDisplay := fmt.Sprintf("%s[%d]", display, index)
				elementLinks := append(append([]jsondoc.Link(nil), links...), jsondoc.ElementLink(index))
				walk(element, elementDisplay, elementLinks)
			}
		}
	}
	walk(root, "", nil)
	return targets
}

// FilterKeyTargets ranks targets against the query with fzf's fuzzy
// matcher, best score first, dropping non-matches. An empty query
// returns all targets in document order. Ties keep document order
// (stable sort).
func FilterKeyTargets(targets []KeyTarget, query string, slab *util.Slab) []KeyTarget {
	if query == "" {
		return targets
	}

	pattern := []rune(query)
	type scored struct {
		target KeyTarget
		score  int
	}
	var matches []scored
	for _, target := range targets {
		result := tui.FuzzyMatch(target.Display, pattern, slab)
		if result.Score > 0 {
			matches = append(matches, scored{target: target, score: result.Score})
		}
	}

	sort.SliceStable(matches, func(left, right int) bool {
		return matches[left].score > matches[right].score
	})

	filtered := make([]KeyTarget, len(matches))
	for index, match := range matches {
		filtered[index] = match.target
	}
	return filtered
}
