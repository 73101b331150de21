// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// Arbor's interactive editor. Built on bubbletea (Elm architecture),
// these components handle common patterns like modal overlays, list
// palettes, fuzzy matching, change animation, and ANSI-aware text
// manipulation.
//
// The tree editor view (lib/treeui) imports this package for
// consistent look and behavior: same theme, same keyboard
// conventions, same overlay mechanics. The view owns its own data
// source, layout, and domain-specific rendering.
package tui
