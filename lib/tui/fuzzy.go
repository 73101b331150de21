// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// fzf's matcher reads package-level character-class and bonus tables
// that are only populated by algo.Init; without it, case folding of
// uppercase text never happens and lowercase patterns cannot match.
func init() {
	algo.Init("default")
}

// FuzzyResult is the outcome of matching a pattern against one text:
// the fzf score (higher is better, zero means no match) and the rune
// positions of the matched characters for highlighting.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// FuzzyMatch runs fzf's FuzzyMatchV2 algorithm against text. Matching
// is case-insensitive: the pattern is lowercased here and fzf folds
// the text. An empty pattern matches nothing — callers treat that as
// "show everything" rather than asking the matcher.
//
// slab is fzf's scratch allocation arena; pass the same slab across
// calls in a loop to avoid per-call allocations, or nil for one-off
// matches.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}

	lowered := make([]rune, len(pattern))
	for index, character := range pattern {
		lowered[index] = unicode.ToLower(character)
	}

	chars := util.ToChars([]byte(text))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, lowered, true, slab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}

	match := FuzzyResult{Score: result.Score}
	if positions != nil {
		match.Positions = *positions
	}
	return match
}
