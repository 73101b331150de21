// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

// Package editor coordinates the document model, the display tree,
// and the search engine for one editing session. It owns the
// single-slot undo snapshot and keeps the document and the tree
// consistent through every mutation.
//
// Nothing here locks. The session relies on the single-active-mutator
// discipline: long-running operations (load, save, delete, find-all)
// run on at most one background task at a time, guarded by Runner, and
// hand their results back to the coordinating context by message
// passing. Direct tree access and mutation must come only from that
// coordinating context while no background task is running.
package editor
