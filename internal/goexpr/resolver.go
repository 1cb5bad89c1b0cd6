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


package goexpr

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/staleread/internal/chain"
)

// Resolver answers symbol queries from type-checked Go syntax.
type Resolver struct {
	Info *types.Info
}

var _ chain.Resolver = Resolver{}

// SymbolOf returns the variable or field e denotes, or nil.
func (r Resolver) SymbolOf(e chain.Expr) chain.Symbol {
	switch e := e.(type) {
	case *chain.Name:
		return r.varOf(e.Node)

	case *chain.Member:
		sel, ok := e.Node.(*ast.SelectorExpr)
		if !ok {
			return nil // slice, map and array elements and pointer dereferences
		}

		s, ok := r.Info.Selections[sel]
		if !ok || s.Kind() != types.FieldVal {
			return nil
		}

		return symbolOf(s.Obj())

	default:
		return nil
	}
}

func (r Resolver) varOf(n chain.Node) chain.Symbol {
	var id *ast.Ident
	switch n := n.(type) {
	case *ast.Ident:
		id = n

	case *ast.SelectorExpr:
		id = n.Sel

	default:
		return nil
	}

	if id.Name == "_" {
		return nil
	}

	return symbolOf(r.Info.ObjectOf(id))
}

func symbolOf(obj types.Object) chain.Symbol {
	v, ok := obj.(*types.Var)
	if !ok {
		return nil
	}

	return v.Origin()
}

// Aliasing classifies s by its declared type.
func (Resolver) Aliasing(s chain.Symbol) chain.Aliasing {
	v, ok := s.(*types.Var)
	if !ok {
		return chain.Independent
	}

	return Aliasing(v.Type())
}

// Aliasing returns [chain.Shared] for pointer, map, slice, channel, function and
// interface types. A type parameter is shared when every type in its type set is.
func Aliasing(t types.Type) chain.Aliasing {
	if tp, ok := types.Unalias(t).(*types.TypeParam); ok {
		iface, ok := tp.Constraint().Underlying().(*types.Interface)
		if !ok {
			return chain.Independent
		}

		if aliasing, restricted := typeSetAliasing(iface); restricted {
			return aliasing
		}

		return chain.Independent
	}

	switch t.Underlying().(type) {
	case *types.Pointer, *types.Map, *types.Slice, *types.Chan, *types.Signature, *types.Interface:
		return chain.Shared

	default:
		return chain.Independent
	}
}

// typeSetAliasing reports whether iface restricts its type set, and if so whether
// every member is shared.
func typeSetAliasing(iface *types.Interface) (aliasing chain.Aliasing, restricted bool) {
	for i := range iface.NumEmbeddeds() {
		switch e := types.Unalias(iface.EmbeddedType(i)).(type) {
		case *types.Union:
			for j := range e.Len() {
				if Aliasing(e.Term(j).Type()) != chain.Shared {
					return chain.Independent, true
				}
			}

			restricted = true

		default:
			if embedded, ok := e.Underlying().(*types.Interface); ok {
				switch a, r := typeSetAliasing(embedded); {
				case !r:
					continue

				case a != chain.Shared:
					return chain.Independent, true
				}

				restricted = true

				continue
			}

			if Aliasing(e) != chain.Shared {
				return chain.Independent, true
			}

			restricted = true
		}
	}

	if !restricted {
		return chain.Independent, false
	}

	return chain.Shared, true
}
