// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.cbor")

	state := &UIState{LastQuery: "timeout"}
	state.Touch("/data/a.json")
	state.Touch("/data/b.json")

	if err := SaveState(path, state); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	loaded, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}

	if loaded.LastQuery != "timeout" {
		t.Errorf("last query = %q, want %q", loaded.LastQuery, "timeout")
	}
	want := []string{"/data/b.json", "/data/a.json"}
	if len(loaded.RecentFiles) != len(want) {
		t.Fatalf("recent files = %v, want %v", loaded.RecentFiles, want)
	}
	for position, path := range want {
		if loaded.RecentFiles[position] != path {
			t.Errorf("recent[%d] = %q, want %q", position, loaded.RecentFiles[position], path)
		}
	}
}

func TestLoadState_MissingFileIsFresh(t *testing.T) {
	state, err := LoadState(filepath.Join(t.TempDir(), "absent.cbor"))
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if len(state.RecentFiles) != 0 || state.LastQuery != "" {
		t.Errorf("expected fresh state, got %+v", state)
	}
}

func TestLoadState_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.cbor")
	if err := os.WriteFile(path, []byte("not cbor at all"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	if _, err := LoadState(path); err == nil {
		t.Fatal("expected decode error for corrupt state")
	}
}

func TestTouchDeduplicatesAndCaps(t *testing.T) {
	state := &UIState{}
	for i := 0; i < 15; i++ {
		state.Touch(fmt.Sprintf("/data/%d.json", i))
	}
	state.Touch("/data/3.json") // re-open an older entry

	if len(state.RecentFiles) != maxRecentFiles {
		t.Fatalf("recent files length = %d, want %d", len(state.RecentFiles), maxRecentFiles)
	}
	if state.RecentFiles[0] != "/data/3.json" {
		t.Errorf("most recent = %q, want the re-opened file first", state.RecentFiles[0])
	}
	seen := make(map[string]bool)
	for _, path := range state.RecentFiles {
		if seen[path] {
			t.Errorf("duplicate entry %q", path)
		}
		seen[path] = true
	}
}
