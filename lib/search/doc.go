// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

// Package search implements breadth-first text search over the display
// tree: "find next with wrap-around" driven by a stateful cursor, and
// a cancellable, incremental "find all".
//
// Matching is case-insensitive substring containment against each
// node's current display label. Traversal visits level by level, and
// visiting a container forces its children to materialize — search
// deliberately trades lazy-tree economy for implementation simplicity,
// so a full search expands every container it walks through.
//
// Neither operation mutates the document. FindAll polls its context
// once per visited node, so cancellation can never leave partial
// mutations behind.
package search
