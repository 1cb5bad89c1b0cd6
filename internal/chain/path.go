// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0


package chain

import "slices"

//go:generate go tool stringer -type Role -linecomment

// Role is the position of an [AccessNode] within its access path.
type Role uint8

const (
	// Root is a bare name at the start of an access path.
	Root Role = iota // root

	// Intermediate is a member read on the way to the addressed storage.
	Intermediate // intermediate

	// Leaf is the member written by the target.
	Leaf // leaf
)

// AccessNode is one occurrence of a symbol reference within a target expression.
type AccessNode struct {
	// Symbol is the referenced symbol.
	Symbol Symbol

	// Span covers the sub-expression ending with this reference, where the read becomes observable.
	Span Span

	// Role is the position of this node in the path.
	Role Role

	// Key lists the symbols from the root up to this node. It is nil when a hop
	// without a symbol lies in between, since the addressed object is unknown then.
	Key []Symbol
}

// Path returns the access nodes of target in evaluation order.
//
// The instance of a member access is evaluated before the member, so its nodes
// precede the member node. Sub-expressions without a symbol contribute no node.
func Path(r Resolver, target Expr) []AccessNode {
	m, ok := target.(*Member)
	if !ok {
		path, _ := appendPath(nil, r, target)

		return path
	}

	path, key := appendPath(nil, r, m.X)
	if s := r.SymbolOf(m); s != nil {
		path = append(path, AccessNode{Symbol: s, Span: SpanOf(m), Role: Leaf, Key: extend(key, s)})
	}

	return path
}

// Reads returns the access nodes read to locate the storage target writes to.
// These are all nodes of [Path] except the written member itself.
func Reads(r Resolver, target Expr) []AccessNode {
	m, ok := target.(*Member)
	if !ok {
		return nil // a bare name is written, not read
	}

	path, _ := appendPath(nil, r, m.X)

	return path
}

// Key returns the symbols addressing target from its root, or nil when some
// part of target has no symbol.
//
// Two targets with equal keys address the same storage, while equal member
// symbols alone only name the same field of possibly different objects.
func Key(r Resolver, target Expr) []Symbol {
	_, key := appendPath(nil, r, target)

	return key
}

// Written returns the symbol target assigns to, or nil.
func Written(r Resolver, target Expr) Symbol {
	switch target.(type) {
	case *Name, *Member:
		return r.SymbolOf(target)

	default:
		return nil
	}
}

func appendPath(path []AccessNode, r Resolver, e Expr) ([]AccessNode, []Symbol) {
	switch e := e.(type) {
	case *Name:
		s := r.SymbolOf(e)
		if s == nil {
			return path, nil
		}

		key := []Symbol{s}

		return append(path, AccessNode{Symbol: s, Span: SpanOf(e), Role: Root, Key: key}), key

	case *Member:
		var key []Symbol
		path, key = appendPath(path, r, e.X)

		s := r.SymbolOf(e)
		if s == nil {
			return path, nil // element or indirection
		}

		key = extend(key, s)

		return append(path, AccessNode{Symbol: s, Span: SpanOf(e), Role: Intermediate, Key: key}), key

	case *Assign, *Other, nil:
		// reads nothing we can name
	}

	return path, nil
}

func extend(key []Symbol, s Symbol) []Symbol {
	if key == nil {
		return nil
	}

	return append(slices.Clip(key), s)
}
