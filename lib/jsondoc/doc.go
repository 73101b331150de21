// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

// Package jsondoc implements the in-memory document model for Arbor:
// an ordered, mutable JSON value tree with typed read, replace, and
// remove operations addressed by parent links.
//
// Unlike encoding/json's map[string]any representation, objects here
// are ordered member lists. Member order is the order of appearance in
// the source document, and it is preserved through every mutation and
// serialization — a document loaded and saved without edits is
// byte-identical modulo formatting.
//
// The model performs no synchronization. Callers must guarantee a
// single active mutator (see the editor package's task runner).
//
// The typical flow:
//
//  1. Parse: source bytes → Value tree (JSONC accepted, comments stripped)
//  2. Get/Replace/Remove: link-addressed mutation of container values
//  3. DeepCopy: independent snapshot for undo
//  4. Serialize / SerializeIndent: Value tree → canonical bytes
package jsondoc
