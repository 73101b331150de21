// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package jsondoc

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/pretty"
)

// Serialize renders the document as compact canonical JSON: member and
// element order exactly as held in the tree, no insignificant
// whitespace, strings escaped per RFC 8259, numbers emitted with their
// literal source text.
func Serialize(root Value) []byte {
	var buffer bytes.Buffer
	writeValue(&buffer, root)
	return buffer.Bytes()
}

// SerializeIndent renders the document with two-space indentation.
// This is the formatting used for saved files; it is fixed, not
// configurable per call, so repeated saves of an unchanged document
// are byte-identical.
func SerializeIndent(root Value) []byte {
	return pretty.PrettyOptions(Serialize(root), &pretty.Options{Indent: "  "})
}

func writeValue(buffer *bytes.Buffer, v Value) {
	switch value := v.(type) {
	case nil, *Null:
		buffer.WriteString("null")
	case *Bool:
		if value.Value {
			buffer.WriteString("true")
		} else {
			buffer.WriteString("false")
		}
	case *Number:
		buffer.WriteString(value.Raw)
	case *String:
		writeString(buffer, value.Value)
	case *Object:
		buffer.WriteByte('{')
		for position, member := range value.Members {
			if position > 0 {
				buffer.WriteByte(',')
			}
			writeString(buffer, member.Key)
			buffer.WriteByte(':')
			writeValue(buffer, member.Value)
		}
		buffer.WriteByte('}')
	case *Array:
		buffer.WriteByte('[')
		for index, element := range value.Elements {
			if index > 0 {
				buffer.WriteByte(',')
			}
			writeValue(buffer, element)
		}
		buffer.WriteByte(']')
	}
}

// writeString emits a JSON string literal. Escaping is delegated to
// encoding/json, which cannot fail for a string input.
func writeString(buffer *bytes.Buffer, s string) {
	encoded, err := json.Marshal(s)
	if err != nil {
		// Unreachable: marshaling a Go string never errors.
		encoded = []byte(`""`)
	}
	buffer.Write(encoded)
}
