// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package jsondoc

import "testing"

func mustParse(t *testing.T, input string) Value {
	t.Helper()
	root, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	return root
}

func TestGetReplace(t *testing.T) {
	root := mustParse(t, `{"name":"old","items":[10,20,30]}`).(*Object)

	value, ok := Get(root, MemberLink("name"))
	if !ok {
		t.Fatal("Get(name) failed")
	}
	if value.(*String).Value != "old" {
		t.Errorf("expected \"old\", got %v", value)
	}

	if !Replace(root, MemberLink("name"), &String{Value: "new"}) {
		t.Fatal("Replace(name) failed")
	}
	value, _ = Get(root, MemberLink("name"))
	if value.(*String).Value != "new" {
		t.Errorf("replace did not stick: %v", value)
	}

	items, _ := Get(root, MemberLink("items"))
	if !Replace(items, ElementLink(1), &Number{Raw: "99"}) {
		t.Fatal("Replace([1]) failed")
	}
	element, _ := Get(items, ElementLink(1))
	if element.(*Number).Raw != "99" {
		t.Errorf("array replace did not stick: %v", element)
	}

	// Out-of-range array replace fails, wrong link kind fails.
	if Replace(items, ElementLink(17), &Null{}) {
		t.Error("expected out-of-range replace to fail")
	}
	if Replace(items, MemberLink("x"), &Null{}) {
		t.Error("expected member link on array to fail")
	}
}

func TestRemove_Direct(t *testing.T) {
	root := mustParse(t, `{"a":1,"b":2,"c":3}`).(*Object)
	target, _ := root.Get("b")

	if !Remove(root, MemberLink("b"), target) {
		t.Fatal("Remove(b) failed")
	}
	if root.Len() != 2 {
		t.Errorf("expected 2 members, got %d", root.Len())
	}
	if _, ok := root.Get("b"); ok {
		t.Error("member b still present after removal")
	}

	// Order of the survivors is unchanged.
	if root.Members[0].Key != "a" || root.Members[1].Key != "c" {
		t.Errorf("member order disturbed: %v, %v", root.Members[0].Key, root.Members[1].Key)
	}
}

// Identity fallback: after earlier deletions shift array indices, a
// stale element link must still remove the intended value.
func TestRemove_IdentityFallbackAfterIndexDrift(t *testing.T) {
	root := mustParse(t, `["a","b","c","d"]`).(*Array)

	// The caller recorded links before any deletion.
	valueC, _ := root.At(2)

	// Removing [0] shifts "c" to index 1; the stale link [2] now
	// points at "d".
	if !Remove(root, ElementLink(0), nil) {
		t.Fatal("Remove([0]) failed")
	}
	if !Remove(root, ElementLink(2), valueC) {
		t.Fatal("Remove([2]) with drifted index failed to fall back")
	}

	if root.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", root.Len())
	}
	if root.Elements[0].(*String).Value != "b" || root.Elements[1].(*String).Value != "d" {
		t.Errorf("wrong survivors: %v", Serialize(root))
	}
}

func TestRemove_IdentityFallbackAfterKeyRename(t *testing.T) {
	root := mustParse(t, `{"old":{"x":1},"other":2}`).(*Object)
	target, _ := root.Get("old")

	// Simulate a rename: the member now sits under a different key.
	root.Members[0].Key = "renamed"

	if !Remove(root, MemberLink("old"), target) {
		t.Fatal("Remove with renamed key failed to fall back to identity")
	}
	if _, ok := root.Get("renamed"); ok {
		t.Error("renamed member still present")
	}
}

func TestRemove_Unresolvable(t *testing.T) {
	root := mustParse(t, `{"a":1}`).(*Object)
	stranger := &String{Value: "not in the document"}

	if Remove(root, MemberLink("missing"), stranger) {
		t.Error("expected removal of unknown target to fail")
	}
	if root.Len() != 1 {
		t.Errorf("failed removal mutated the container: %v", Serialize(root))
	}
}

func TestDeepCopy_Independent(t *testing.T) {
	root := mustParse(t, `{"list":[1,2],"obj":{"k":"v"}}`)
	snapshot := DeepCopy(root)

	if !Equal(root, snapshot) {
		t.Fatal("copy is not structurally equal to original")
	}

	// Mutate the original; the snapshot must not move.
	list, _ := Get(root, MemberLink("list"))
	Remove(list, ElementLink(0), nil)
	Replace(root, MemberLink("obj"), &Null{})

	expected := mustParse(t, `{"list":[1,2],"obj":{"k":"v"}}`)
	if !Equal(snapshot, expected) {
		t.Errorf("snapshot changed after mutating original: %s", Serialize(snapshot))
	}
}
