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


package chain_test

import (
	"go/token"
	"strings"

	. "fillmore-labs.com/staleread/internal/chain"
)

type testSymbol struct {
	name     string
	aliasing Aliasing
}

func (s *testSymbol) Name() string { return s.name }

type testNode struct {
	pos, end token.Pos
	name     string
}

func (n testNode) Pos() token.Pos { return n.pos }
func (n testNode) End() token.Pos { return n.end }

// testResolver resolves every name segment to one symbol per distinct name, like
// a class with members of its own type.
type testResolver struct {
	symbols map[string]*testSymbol
}

func newTestResolver(aliasing Aliasing, names ...string) testResolver {
	symbols := make(map[string]*testSymbol, len(names))
	for _, name := range names {
		symbols[name] = &testSymbol{name: name, aliasing: aliasing}
	}

	return testResolver{symbols: symbols}
}

func (r testResolver) SymbolOf(e Expr) Symbol {
	var n Node
	switch e := e.(type) {
	case *Name:
		n = e.Node

	case *Member:
		n = e.Node

	default:
		return nil
	}

	s, ok := r.symbols[n.(testNode).name]
	if !ok {
		return nil
	}

	return s
}

func (testResolver) Aliasing(s Symbol) Aliasing { return s.(*testSymbol).aliasing }

// parse builds the right-nested assignment for a statement like "a.Field = a = b".
// Positions are byte offsets plus one. A segment ending in "()" is a call.
func parse(src string) Expr {
	parts := strings.Split(src, " = ")

	offsets := make([]int, len(parts))
	for i, off := 1, len(parts[0])+len(" = "); i < len(parts); i++ {
		offsets[i] = off
		off += len(parts[i]) + len(" = ")
	}

	last := len(parts) - 1
	var e Expr = &Other{Span: Span{Pos: pos(offsets[last]), End: pos(offsets[last] + len(parts[last]))}}

	for i := last - 1; i >= 0; i-- {
		e = &Assign{Lhs: parseTarget(parts[i], offsets[i]), Rhs: e}
	}

	return e
}

func parseTarget(src string, offset int) Expr {
	segments := strings.Split(src, ".")

	start, end := pos(offset), pos(offset+len(segments[0]))

	var e Expr
	if strings.HasSuffix(segments[0], "()") {
		e = &Other{Span: Span{Pos: start, End: end}}
	} else {
		e = &Name{Node: testNode{pos: start, end: end, name: segments[0]}}
	}

	for _, segment := range segments[1:] {
		end += token.Pos(1 + len(segment))
		e = &Member{Node: testNode{pos: start, end: end, name: segment}, X: e}
	}

	return e
}

func pos(offset int) token.Pos { return token.Pos(offset + 1) }
