// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"errors"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// maxRecentFiles caps the recent-files list persisted between runs.
const maxRecentFiles = 10

// UIState is the small cross-run state of the editor: the files opened
// most recently and the last search query. It is persisted as CBOR in
// the configured state directory, not alongside the documents.
type UIState struct {
	RecentFiles []string `cbor:"recent_files"`
	LastQuery   string   `cbor:"last_query"`
}

// Touch records path as the most recently opened file, deduplicating
// and trimming the list to its cap.
func (u *UIState) Touch(path string) {
	recent := make([]string, 0, len(u.RecentFiles)+1)
	recent = append(recent, path)
	for _, previous := range u.RecentFiles {
		if previous != path {
			recent = append(recent, previous)
		}
	}
	if len(recent) > maxRecentFiles {
		recent = recent[:maxRecentFiles]
	}
	u.RecentFiles = recent
}

// LoadState reads the persisted UI state from path. A missing file is
// not an error: a fresh state is returned so first runs work without
// any setup.
func LoadState(path string) (*UIState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &UIState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state %s: %w", path, err)
	}

	var state UIState
	if err := cbor.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decoding state %s: %w", path, err)
	}
	return &state, nil
}

// SaveState writes the UI state to path with deterministic encoding,
// so unchanged state produces byte-identical files.
func SaveState(path string, state *UIState) error {
	encoder, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return fmt.Errorf("building encoder: %w", err)
	}
	data, err := encoder.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing state %s: %w", path, err)
	}
	return nil
}
