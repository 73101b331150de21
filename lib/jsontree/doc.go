// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

// Package jsontree builds the lazily-materialized display tree that
// mirrors a jsondoc document. Each tree node shadows exactly one
// document value; container nodes materialize their immediate children
// only on first access, so a multi-gigabyte document costs one level
// of nodes per expansion rather than a full tree at load.
//
// Two node flavors exist: Container (mirrors an object or array, owns
// its child nodes) and Leaf (mirrors a scalar, editable in place).
// Parent references point upward for path reconstruction only;
// ownership flows strictly parent to child.
//
// Labels are derived display state, never authoritative: "key: "value""
// for scalar members, "key" for container members, "[i]: 42" and "[i]"
// for array elements. Mutation goes through jsondoc links held by the
// nodes, not through label parsing.
package jsontree
