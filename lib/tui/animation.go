// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"
)

// HeatDecayDuration is how long a tree row glows after a mutation.
const HeatDecayDuration = 5 * time.Second

// HeatTickInterval is the re-render cadence while any rows glow; 100ms
// keeps the fade smooth without redrawing when nothing changes.
const HeatTickInterval = 100 * time.Millisecond

// HeatKind selects the glow color for a mutated row.
type HeatKind int

const (
	// HeatPut marks a row whose value was written: an inline edit, or
	// a subtree brought back by undo.
	HeatPut HeatKind = iota
	// HeatRemove marks the container that just lost a child to a
	// delete.
	HeatRemove
)

type rowHeat struct {
	expiry time.Time
	kind   HeatKind
}

// HeatTracker drives the brief background tint on recently mutated
// tree rows. Rows are keyed by their path-derived row ID, which
// survives the re-flattening that follows every mutation.
type HeatTracker struct {
	rows map[string]rowHeat
}

// NewHeatTracker returns a tracker with no glowing rows.
func NewHeatTracker() *HeatTracker {
	return &HeatTracker{rows: make(map[string]rowHeat)}
}

// Ignite starts (or restarts) the glow on a row.
func (tracker *HeatTracker) Ignite(rowID string, kind HeatKind, now time.Time) {
	tracker.rows[rowID] = rowHeat{expiry: now.Add(HeatDecayDuration), kind: kind}
}

// Heat reports the row's glow intensity: 1.0 right after Ignite,
// falling linearly to 0.0 at expiry. Unknown and expired rows read as
// cold.
func (tracker *HeatTracker) Heat(rowID string, now time.Time) float64 {
	row, ok := tracker.rows[rowID]
	if !ok {
		return 0
	}
	remaining := row.expiry.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return float64(remaining) / float64(HeatDecayDuration)
}

// Kind reports which mutation lit the row. Meaningless once Heat
// reads zero.
func (tracker *HeatTracker) Kind(rowID string) HeatKind {
	return tracker.rows[rowID].kind
}

// HasHot reports whether any row still glows, pruning expired entries
// as it scans. The shell keeps scheduling ticks only while this holds.
func (tracker *HeatTracker) HasHot(now time.Time) bool {
	hot := false
	for rowID, row := range tracker.rows {
		if row.expiry.After(now) {
			hot = true
			continue
		}
		delete(tracker.rows, rowID)
	}
	return hot
}
