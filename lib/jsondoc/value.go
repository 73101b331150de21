// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package jsondoc

import "strconv"

// Kind identifies the JSON type of a Value.
type Kind uint8

const (
	// KindNull is the JSON null literal.
	KindNull Kind = iota
	// KindBool is a JSON boolean.
	KindBool
	// KindNumber is a JSON number.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindObject is a JSON object (ordered members, unique keys).
	KindObject
	// KindArray is a JSON array.
	KindArray
)

var kindNames = map[Kind]string{
	KindNull:   "null",
	KindBool:   "boolean",
	KindNumber: "number",
	KindString: "string",
	KindObject: "object",
	KindArray:  "array",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "unknown"
	}
	return name
}

// Value is one node of the document tree. All implementations are
// pointer types, so interface equality is node identity — the property
// the identity-fallback removal in Remove depends on.
type Value interface {
	// Kind reports the JSON type of this value.
	Kind() Kind

	// sealed prevents implementations outside this package. Identity
	// semantics (pointer equality) only hold for the types defined here.
	sealed()
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON boolean.
type Bool struct {
	Value bool
}

// Number is a JSON number. The literal source text is kept verbatim so
// numbers survive a load/save round trip without reformatting (1e3
// stays 1e3, 0.10 stays 0.10) and without float64 precision loss on
// large integers.
type Number struct {
	Raw string
}

// String is a JSON string. Value holds the decoded text, not the
// quoted source form.
type String struct {
	Value string
}

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object: an ordered member list with unique keys.
type Object struct {
	Members []*Member
}

// Array is a JSON array.
type Array struct {
	Elements []Value
}

func (*Null) Kind() Kind   { return KindNull }
func (*Bool) Kind() Kind   { return KindBool }
func (*Number) Kind() Kind { return KindNumber }
func (*String) Kind() Kind { return KindString }
func (*Object) Kind() Kind { return KindObject }
func (*Array) Kind() Kind  { return KindArray }

func (*Null) sealed()   {}
func (*Bool) sealed()   {}
func (*Number) sealed() {}
func (*String) sealed() {}
func (*Object) sealed() {}
func (*Array) sealed()  {}

// IsScalar reports whether v is a scalar or null (anything that is not
// an object or array). A nil Value counts as scalar: the tree layer
// treats missing backing values as leaves.
func IsScalar(v Value) bool {
	if v == nil {
		return true
	}
	switch v.Kind() {
	case KindObject, KindArray:
		return false
	}
	return true
}

// Index returns the position of the member with the given key, or -1.
func (o *Object) Index(key string) int {
	for position, member := range o.Members {
		if member.Key == key {
			return position
		}
	}
	return -1
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	position := o.Index(key)
	if position < 0 {
		return nil, false
	}
	return o.Members[position].Value, true
}

// Set replaces the value under key, or appends a new member when the
// key is absent. Insertion order of existing keys is preserved.
func (o *Object) Set(key string, value Value) {
	if position := o.Index(key); position >= 0 {
		o.Members[position].Value = value
		return
	}
	o.Members = append(o.Members, &Member{Key: key, Value: value})
}

// Len returns the number of members.
func (o *Object) Len() int { return len(o.Members) }

// At returns the element at position index.
func (a *Array) At(index int) (Value, bool) {
	if index < 0 || index >= len(a.Elements) {
		return nil, false
	}
	return a.Elements[index], true
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.Elements) }

// ScalarText renders a scalar value in its display form: strings
// quoted, numbers in their literal source text, booleans and null as
// their JSON literals. Containers render as their kind name in angle
// brackets; callers displaying containers normally use labels instead.
func ScalarText(v Value) string {
	switch value := v.(type) {
	case nil, *Null:
		return "null"
	case *Bool:
		if value.Value {
			return "true"
		}
		return "false"
	case *Number:
		return value.Raw
	case *String:
		return strconv.Quote(value.Value)
	default:
		return "<" + v.Kind().String() + ">"
	}
}
