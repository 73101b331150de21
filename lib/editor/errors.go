// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"errors"
	"fmt"
)

// ErrUndoUnavailable reports an undo request with no armed snapshot.
// Nothing happens; the caller may simply try again after a delete.
var ErrUndoUnavailable = errors.New("editor: nothing to undo")

// ErrBusy reports an attempt to start a background task while another
// is still running. The design allows at most one active background
// task; the caller should retry after the current one completes.
var ErrBusy = errors.New("editor: a background task is already running")

// ErrNoDocument reports an operation that needs a loaded document
// when none is loaded.
var ErrNoDocument = errors.New("editor: no document loaded")

// MutationError reports a delete whose target could not be resolved
// in the document, even after the identity fallback. The tree and
// document are unchanged; the undo snapshot taken before the attempt
// stays armed.
type MutationError struct {
	Label string
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("editor: cannot remove %q from the document", e.Label)
}
