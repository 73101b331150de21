// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package treeui

import (
	"testing"

	"github.com/arbor-foundation/arbor/lib/jsondoc"
)

func TestCollectKeyTargets(t *testing.T) {
	value, err := jsondoc.Parse([]byte(`{
		"servers": [{"host": "alpha", "port": 80}],
		"timeout": 30
	}`))
	if err != nil {
		t.Fatalf("parsing: %v", err)
	}

	targets := CollectKeyTargets(value)
	want := []string{
		"servers",
		"servers[0].host",
		"servers[0].port",
		"timeout",
	}
	if len(targets) != len(want) {
		t.Fatalf("got %d targets, want %d", len(targets), len(want))
	}
	for index, display := range want {
		if targets[index].Display != display {
			t.Errorf("target %d = %q, want %q", index, targets[index].Display, display)
		}
	}

	// The link chain for a nested member traverses object, array,
	// object.
	host := targets[1]
	if len(host.Links) != 3 {
		t.Fatalf("host link chain length = %d, want 3", len(host.Links))
	}
	if !host.Links[0].IsMember() || host.Links[0].Key() != "servers" {
		t.Error("first link should address the servers member")
	}
	if host.Links[1].IsMember() || host.Links[1].Index() != 0 {
		t.Error("second link should address element 0")
	}
	if !host.Links[2].IsMember() || host.Links[2].Key() != "host" {
		t.Error("third link should address the host member")
	}
}

func TestCollectKeyTargets_ScalarRoot(t *testing.T) {
	value, err := jsondoc.Parse([]byte(`42`))
	if err != nil {
		t.Fatalf("parsing: %v", err)
	}
	if targets := CollectKeyTargets(value); len(targets) != 0 {
		t.Errorf("scalar root should yield no targets, got %d", len(targets))
	}
}

func TestFilterKeyTargets(t *testing.T) {
	targets := []KeyTarget{
		{Display: "timeout"},
		{Display: "servers[0].host"},
		{Display: "servers[0].port"},
	}

	filtered := FilterKeyTargets(targets, "host", nil)
	if len(filtered) != 1 {
		t.Fatalf("got %d matches for 'host', want 1", len(filtered))
	}
	if filtered[0].Display != "servers[0].host" {
		t.Errorf("match = %q", filtered[0].Display)
	}

	// Empty query keeps document order.
	all := FilterKeyTargets(targets, "", nil)
	if len(all) != 3 || all[0].Display != "timeout" {
		t.Errorf("empty query should return all targets unchanged, got %v", all)
	}

	// No match.
	if none := FilterKeyTargets(targets, "zzz", nil); len(none) != 0 {
		t.Errorf("expected no matches, got %d", len(none))
	}
}
