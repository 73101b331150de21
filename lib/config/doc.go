// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads editor configuration for Arbor.
//
// Configuration comes from a single YAML file specified by the
// ARBOR_CONFIG environment variable or the --config flag. There is no
// automatic discovery and no environment-variable overrides of
// individual values; the file is the single source of truth, which
// keeps behavior deterministic across machines.
//
// Every field has a working default, so running without a config file
// is fully supported.
package config
