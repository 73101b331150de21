// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package jsondoc

import (
	"errors"
	"testing"
)

func TestParse_ObjectOrderPreserved(t *testing.T) {
	root, err := Parse([]byte(`{"zebra":1,"apple":2,"mango":3}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	object, ok := root.(*Object)
	if !ok {
		t.Fatalf("expected *Object root, got %T", root)
	}

	keys := make([]string, 0, object.Len())
	for _, member := range object.Members {
		keys = append(keys, member.Key)
	}
	expected := []string{"zebra", "apple", "mango"}
	for position, key := range expected {
		if keys[position] != key {
			t.Errorf("member %d: expected key %q, got %q", position, key, keys[position])
		}
	}
}

func TestParse_ScalarRoot(t *testing.T) {
	cases := []struct {
		input string
		kind  Kind
	}{
		{`42`, KindNumber},
		{`"hello"`, KindString},
		{`true`, KindBool},
		{`null`, KindNull},
		{`[1,2]`, KindArray},
	}
	for _, testCase := range cases {
		root, err := Parse([]byte(testCase.input))
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", testCase.input, err)
		}
		if root.Kind() != testCase.kind {
			t.Errorf("Parse(%q): expected kind %s, got %s", testCase.input, testCase.kind, root.Kind())
		}
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"unterminated": `))
	if err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected *ParseError, got %T", err)
	}
}

func TestParse_InvalidUTF8(t *testing.T) {
	_, err := Parse([]byte{'"', 0xff, 0xfe, '"'})
	if err == nil {
		t.Fatal("expected error for invalid UTF-8, got nil")
	}
}

func TestParse_JSONCComments(t *testing.T) {
	input := []byte(`{
		// line comment
		"key": "value", /* block */
		"trailing": [1, 2, 3,],
	}`)
	root, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed on JSONC input: %v", err)
	}
	object := root.(*Object)
	if object.Len() != 2 {
		t.Errorf("expected 2 members, got %d", object.Len())
	}
}

func TestParse_NumberLiteralKept(t *testing.T) {
	root, err := Parse([]byte(`[0.10, 1e3, 9007199254740993]`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	array := root.(*Array)
	expected := []string{"0.10", "1e3", "9007199254740993"}
	for index, raw := range expected {
		number := array.Elements[index].(*Number)
		if number.Raw != raw {
			t.Errorf("element %d: expected literal %q, got %q", index, raw, number.Raw)
		}
	}
}
