// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package jsondoc

// Get resolves a link against a container value. Returns false when
// the container is not actually a container, the key is absent, or
// the index is out of range.
func Get(container Value, link Link) (Value, bool) {
	switch parent := container.(type) {
	case *Object:
		if !link.IsMember() {
			return nil, false
		}
		return parent.Get(link.Key())
	case *Array:
		if link.IsMember() {
			return nil, false
		}
		return parent.At(link.Index())
	}
	return nil, false
}

// Replace writes value into the slot addressed by link. For objects a
// missing key is appended (matching Object.Set); for arrays an
// out-of-range index fails. Returns whether the write happened.
func Replace(container Value, link Link, value Value) bool {
	switch parent := container.(type) {
	case *Object:
		if !link.IsMember() {
			return false
		}
		parent.Set(link.Key(), value)
		return true
	case *Array:
		if link.IsMember() {
			return false
		}
		index := link.Index()
		if index < 0 || index >= len(parent.Elements) {
			return false
		}
		parent.Elements[index] = value
		return true
	}
	return false
}

// Remove deletes the child addressed by link from container. target is
// the value the caller believes lives at that slot (nil to skip the
// check).
//
// Resolution is two-stage. The direct lookup removes by key/index, but
// only if the slot still holds target. When it does not — earlier
// removals shifted array indices, or a key was renamed — the container's
// direct children are scanned for identity with target and that entry
// is removed instead. The fallback is what keeps a long-lived display
// tree deletable after its links have gone stale; direct links alone
// are not reliable once prior deletions have occurred.
//
// Returns false when nothing could be resolved; the container is left
// unchanged in that case.
func Remove(container Value, link Link, target Value) bool {
	switch parent := container.(type) {
	case *Object:
		if link.IsMember() {
			if position := parent.Index(link.Key()); position >= 0 {
				if target == nil || parent.Members[position].Value == target {
					parent.Members = deleteMember(parent.Members, position)
					return true
				}
			}
		}
		if target == nil {
			return false
		}
		for position, member := range parent.Members {
			if member.Value == target {
				parent.Members = deleteMember(parent.Members, position)
				return true
			}
		}
	case *Array:
		if !link.IsMember() {
			index := link.Index()
			if index >= 0 && index < len(parent.Elements) {
				if target == nil || parent.Elements[index] == target {
					parent.Elements = deleteElement(parent.Elements, index)
					return true
				}
			}
		}
		if target == nil {
			return false
		}
		for index, element := range parent.Elements {
			if element == target {
				parent.Elements = deleteElement(parent.Elements, index)
				return true
			}
		}
	}
	return false
}

func deleteMember(members []*Member, position int) []*Member {
	copy(members[position:], members[position+1:])
	members[len(members)-1] = nil
	return members[:len(members)-1]
}

func deleteElement(elements []Value, index int) []Value {
	copy(elements[index:], elements[index+1:])
	elements[len(elements)-1] = nil
	return elements[:len(elements)-1]
}

// DeepCopy returns a fully independent copy of root. Mutating the copy
// never touches the original; this is the snapshot primitive behind
// single-slot undo.
func DeepCopy(root Value) Value {
	switch value := root.(type) {
	case nil:
		return nil
	case *Null:
		return &Null{}
	case *Bool:
		return &Bool{Value: value.Value}
	case *Number:
		return &Number{Raw: value.Raw}
	case *String:
		return &String{Value: value.Value}
	case *Object:
		members := make([]*Member, len(value.Members))
		for position, member := range value.Members {
			members[position] = &Member{Key: member.Key, Value: DeepCopy(member.Value)}
		}
		return &Object{Members: members}
	case *Array:
		elements := make([]Value, len(value.Elements))
		for index, element := range value.Elements {
			elements[index] = DeepCopy(element)
		}
		return &Array{Elements: elements}
	}
	return nil
}

// Equal reports structural equality: same kinds, same member keys in
// the same order, same element order, and identical scalar content.
// Numbers compare by literal text.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch left := a.(type) {
	case *Null:
		return true
	case *Bool:
		return left.Value == b.(*Bool).Value
	case *Number:
		return left.Raw == b.(*Number).Raw
	case *String:
		return left.Value == b.(*String).Value
	case *Object:
		right := b.(*Object)
		if len(left.Members) != len(right.Members) {
			return false
		}
		for position, member := range left.Members {
			other := right.Members[position]
			if member.Key != other.Key || !Equal(member.Value, other.Value) {
				return false
			}
		}
		return true
	case *Array:
		right := b.(*Array)
		if len(left.Elements) != len(right.Elements) {
			return false
		}
		for index, element := range left.Elements {
			if !Equal(element, right.Elements[index]) {
				return false
			}
		}
		return true
	}
	return false
}
