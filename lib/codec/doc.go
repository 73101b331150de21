// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec is the byte-level boundary between the editor and the
// filesystem. It reads and writes whole document files, transparently
// handling gzip-compressed documents (.gz suffix or the gzip magic
// bytes), and provides the content hashing used for dirty-state
// detection.
//
// Errors crossing this boundary are IOError values wrapping the
// underlying cause. A failed write never leaves a truncated document:
// writes go to a temporary file in the target directory and rename
// into place.
package codec
