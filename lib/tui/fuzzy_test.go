// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"
)

func TestFuzzyMatchBasic(t *testing.T) {
	result := FuzzyMatch("connection_pool_size", []rune("pool"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for substring match")
	}
	if len(result.Positions) == 0 {
		t.Fatal("expected non-empty match positions")
	}
}

func TestFuzzyMatchNonContiguous(t *testing.T) {
	// "cps" should match "connection_pool_size" — c from connection,
	// p from pool, s from size.
	result := FuzzyMatch("connection_pool_size", []rune("cps"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for non-contiguous fuzzy match")
	}
}

func TestFuzzyMatchNoMatch(t *testing.T) {
	result := FuzzyMatch("connection_pool_size", []rune("xyz"), nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for no match, got %d", result.Score)
	}
	if len(result.Positions) != 0 {
		t.Errorf("expected empty positions for no match, got %v", result.Positions)
	}
}

func TestFuzzyMatchCaseInsensitive(t *testing.T) {
	// Pattern is lowercase, text has uppercase. The wrapper lowercases
	// both sides, so this should match.
	result := FuzzyMatch("MaxRetryCount", []rune("retry"), nil)
	if result.Score <= 0 {
		t.Fatalf("expected case-insensitive match, got score=%d", result.Score)
	}
}

func TestFuzzyMatchEmptyPattern(t *testing.T) {
	result := FuzzyMatch("anything", []rune{}, nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for empty pattern, got %d", result.Score)
	}
}
