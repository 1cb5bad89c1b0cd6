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

import "go/token"

// Span is a half-open source range.
type Span struct {
	Pos, End token.Pos
}

// SpanOf returns the source range of n.
func SpanOf(n Node) Span {
	return Span{Pos: n.Pos(), End: n.End()}
}

// Expr is one of [*Name], [*Member], [*Assign] or [*Other].
type Expr interface {
	Pos() token.Pos
	End() token.Pos
	expr()
}

// Name is a bare reference to a variable, field or property.
type Name struct {
	// Node is the host syntax node, opaque to this package.
	Node Node
}

// Member addresses storage through the instance X, like a field selector, an
// index expression or a pointer dereference.
type Member struct {
	// Node is the host syntax node of the whole access, opaque to this package.
	Node Node

	// X is the instance expression, evaluated before the member is addressed.
	X Expr
}

// Assign is a simple assignment Lhs = Rhs.
type Assign struct {
	Lhs, Rhs Expr
}

// Other is any expression that neither denotes a symbol nor assigns.
type Other struct {
	Span Span
}

// Node is a host syntax node.
type Node interface {
	Pos() token.Pos
	End() token.Pos
}

func (n *Name) Pos() token.Pos { return n.Node.Pos() }
func (n *Name) End() token.Pos { return n.Node.End() }

func (m *Member) Pos() token.Pos { return m.Node.Pos() }
func (m *Member) End() token.Pos { return m.Node.End() }

func (a *Assign) Pos() token.Pos { return a.Lhs.Pos() }
func (a *Assign) End() token.Pos { return a.Rhs.End() }

func (o *Other) Pos() token.Pos { return o.Span.Pos }
func (o *Other) End() token.Pos { return o.Span.End }

func (*Name) expr()   {}
func (*Member) expr() {}
func (*Assign) expr() {}
func (*Other) expr()  {}
