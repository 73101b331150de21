// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package jsondoc

import (
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// ParseError reports why input bytes could not become a document.
// Parse is all-or-nothing: on error no partial document exists.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "jsondoc: " + e.Reason
}

// Parse decodes data as UTF-8 text containing one top-level JSON value
// (object, array, or scalar) and builds the document tree.
//
// Input may be JSONC — // and /* */ comments and trailing commas are
// stripped before parsing, so hand-maintained config-style documents
// load directly. The stripped form is what the document represents;
// comments do not survive a save.
//
// The tree is built from a gjson walk rather than encoding/json
// because gjson iterates object members in document order, which is
// the order the model must preserve.
func Parse(data []byte) (Value, error) {
	if !utf8.Valid(data) {
		return nil, &ParseError{Reason: "input is not valid UTF-8"}
	}
	normalized := jsonc.ToJSON(data)
	if !gjson.ValidBytes(normalized) {
		return nil, &ParseError{Reason: "malformed JSON"}
	}
	return fromResult(gjson.ParseBytes(normalized)), nil
}

// fromResult converts one gjson node (and, recursively, its subtree)
// into the document model.
func fromResult(result gjson.Result) Value {
	switch {
	case result.IsObject():
		object := &Object{}
		result.ForEach(func(key, value gjson.Result) bool {
			// Later duplicates of a key overwrite earlier ones, keeping
			// the object's keys unique. Position of the first
			// occurrence wins, matching encoding/json's last-value
			// semantics without disturbing member order.
			object.Set(key.String(), fromResult(value))
			return true
		})
		return object
	case result.IsArray():
		array := &Array{}
		for _, element := range result.Array() {
			array.Elements = append(array.Elements, fromResult(element))
		}
		return array
	case result.Type == gjson.String:
		return &String{Value: result.String()}
	case result.Type == gjson.Number:
		return &Number{Raw: result.Raw}
	case result.Type == gjson.True:
		return &Bool{Value: true}
	case result.Type == gjson.False:
		return &Bool{Value: false}
	default:
		return &Null{}
	}
}
