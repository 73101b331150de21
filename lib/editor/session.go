// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/arbor-foundation/arbor/lib/codec"
	"github.com/arbor-foundation/arbor/lib/jsondoc"
	"github.com/arbor-foundation/arbor/lib/jsontree"
	"github.com/arbor-foundation/arbor/lib/search"
)

// Session is one editing session: a document, its display tree, the
// single-slot undo snapshot, and the search cursor. All methods must
// be called under the single-active-mutator discipline described in
// the package comment.
type Session struct {
	// Backup, when set, makes Save keep a .bak copy of the previous
	// file content before overwriting.
	Backup bool

	logger *slog.Logger

	path string // file backing the session; empty for LoadBytes sessions
	name string // display name of the root node

	document jsondoc.Value
	tree     *jsontree.Container
	engine   *search.Engine

	// snapshot is the single undo slot: a deep copy of the document
	// taken immediately before the most recent delete, or nil.
	snapshot jsondoc.Value

	// savedHash is the content hash of the document as last loaded or
	// saved, for dirty detection.
	savedHash string

	// size and modTime describe the backing file as of the last load
	// or save, for the shell's header line.
	size    int64
	modTime time.Time
}

// NewSession returns an empty session. A nil logger falls back to
// slog.Default.
func NewSession(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{logger: logger}
}

// LoadBytes parses data and replaces the session's document and tree.
// name labels the tree root (typically the file name). On parse
// failure the session keeps its previous document untouched — load is
// all-or-nothing.
func (s *Session) LoadBytes(name string, data []byte) error {
	document, err := jsondoc.Parse(data)
	if err != nil {
		return err
	}

	s.document = document
	s.name = name
	s.tree = jsontree.NewRoot(name, document)
	s.tree.LoadChildren() // the root row starts expanded
	s.engine = search.New(s.tree)
	s.snapshot = nil
	s.savedHash = codec.Hash(jsondoc.Serialize(document))
	s.size = int64(len(data))
	s.modTime = time.Now()

	s.logger.Info("document loaded", "name", name, "bytes", len(data))
	return nil
}

// Open reads the file at path through the codec boundary and loads it.
func (s *Session) Open(path string) error {
	data, err := codec.ReadFile(path)
	if err != nil {
		return err
	}
	if err := s.LoadBytes(filepath.Base(path), data); err != nil {
		return err
	}
	s.path = path
	if info, statErr := os.Stat(path); statErr == nil {
		s.size = info.Size()
		s.modTime = info.ModTime()
	}
	return nil
}

// Save serializes the document and fully overwrites the session's
// backing file. In-memory state is unchanged on failure.
func (s *Session) Save() error {
	return s.SaveTo(s.path)
}

// SaveTo serializes the document with the fixed two-space indentation
// and writes it to path, which becomes the session's backing file.
//
// A shell that wants the write off the coordinating context uses the
// three phases directly: EncodeDocument on the coordinating context,
// WriteDocument on the background task, CommitSave back on the
// coordinating context once the write succeeded.
func (s *Session) SaveTo(path string) error {
	data, err := s.EncodeDocument()
	if err != nil {
		return err
	}
	if err := s.WriteDocument(path, data); err != nil {
		return err
	}
	s.CommitSave(path, int64(len(data)))
	return nil
}

// EncodeDocument returns the exact bytes a save would write: the fixed
// two-space indented serialization of the document.
func (s *Session) EncodeDocument() ([]byte, error) {
	if s.document == nil {
		return nil, ErrNoDocument
	}
	return jsondoc.SerializeIndent(s.document), nil
}

// WriteDocument writes pre-encoded document bytes to path, keeping a
// .bak copy of the previous content when Backup is set. It touches no
// session state, so it may run on a background task while the
// coordinating context keeps rendering.
func (s *Session) WriteDocument(path string, data []byte) error {
	if s.Backup {
		if previous, err := codec.ReadFile(path); err == nil {
			if err := codec.WriteFile(path+".bak", previous); err != nil {
				return err
			}
		}
	}
	return codec.WriteFile(path, data)
}

// CommitSave records a completed write: path becomes the backing file
// and the document reads clean. Must run on the coordinating context.
func (s *Session) CommitSave(path string, size int64) {
	s.path = path
	s.savedHash = codec.Hash(jsondoc.Serialize(s.document))
	s.size = size
	s.modTime = time.Now()
	s.logger.Info("document saved", "path", path, "bytes", size)
}

// Dirty reports whether the document differs from its state at the
// last load or save. Comparison is by content hash of the canonical
// serialization, so an edit that is later reverted by hand reads as
// clean again.
func (s *Session) Dirty() bool {
	if s.document == nil {
		return false
	}
	return codec.Hash(jsondoc.Serialize(s.document)) != s.savedHash
}

// Root returns the display tree root, or nil before the first load.
func (s *Session) Root() *jsontree.Container { return s.tree }

// Document returns the document root, or nil before the first load.
func (s *Session) Document() jsondoc.Value { return s.document }

// Path returns the backing file path, empty for byte-loaded sessions.
func (s *Session) Path() string { return s.path }

// Name returns the display name of the root node.
func (s *Session) Name() string { return s.name }

// Size returns the backing file size in bytes as of the last load or
// save.
func (s *Session) Size() int64 { return s.size }

// ModTime returns the backing file modification time as of the last
// load or save.
func (s *Session) ModTime() time.Time { return s.modTime }

// Retarget changes the backing file path without writing anything;
// the next save goes to path.
func (s *Session) Retarget(path string) { s.path = path }

// CanUndo reports whether an undo snapshot is armed.
func (s *Session) CanUndo() bool { return s.snapshot != nil }

// DeleteNode removes node from both the document and the tree.
//
// The engine asks for no confirmation — that is the shell's job.
// Sequence: arm the undo slot with a deep copy of the whole document
// (unconditionally, overwriting any prior snapshot), resolve the
// node's link against its parent container with the identity fallback,
// remove the value, then detach the tree node. On resolution failure
// the tree and document are untouched and a MutationError is
// returned — but the snapshot stays armed, exactly as if the delete
// had happened.
func (s *Session) DeleteNode(node jsontree.Node) error {
	if s.document == nil {
		return ErrNoDocument
	}

	s.snapshot = jsondoc.DeepCopy(s.document)

	parent, ok := node.Parent().(*jsontree.Container)
	if !ok {
		// The root itself, or a node already detached.
		return &MutationError{Label: node.Label()}
	}
	if leaf, isLeaf := node.(*jsontree.Leaf); isLeaf && leaf.IsPlaceholder() {
		return &MutationError{Label: node.Label()}
	}

	if !jsondoc.Remove(parent.Value(), node.Link(), node.Value()) {
		return &MutationError{Label: node.Label()}
	}
	parent.Detach(node)

	// The cursor may point at or below the removed node; resuming
	// "after" it would skip live matches.
	s.engine.Invalidate()

	s.logger.Info("node deleted", "label", node.Label())
	return nil
}

// Undo restores the document to the snapshot taken before the most
// recent delete. The whole root is replaced — undo is not a patch —
// the slot is cleared (single use), and the display tree is rebuilt
// fresh and lazy from the restored value. With no snapshot armed it
// reports ErrUndoUnavailable and changes nothing.
func (s *Session) Undo() error {
	if s.snapshot == nil {
		return ErrUndoUnavailable
	}

	s.document = s.snapshot
	s.snapshot = nil
	s.tree = jsontree.NewRoot(s.name, s.document)
	s.tree.LoadChildren()
	s.engine.SetRoot(s.tree)

	s.logger.Info("delete undone", "name", s.name)
	return nil
}

// FindFirst resumes the find-next scan. See the search package for
// the cursor and wrap-around semantics.
func (s *Session) FindFirst(query string) jsontree.Node {
	if s.engine == nil {
		return nil
	}
	return s.engine.FindFirst(query)
}

// FindAll streams every match to visit and returns the final count.
// Runs one cancellable breadth-first pass; see search.Engine.FindAll.
func (s *Session) FindAll(ctx context.Context, query string, visit func(jsontree.Node)) int {
	if s.engine == nil {
		return 0
	}
	return s.engine.FindAll(ctx, query, visit)
}
