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
	"go/token"
	"go/types"

	"fillmore-labs.com/staleread/internal/chain"
)

// FromAssign returns the assignment chain of a multi-target assignment statement.
//
// Go evaluates the operands of index expressions and pointer indirections on the
// left before carrying out the assignments from left to right. The leftmost
// target is assigned first and so becomes the innermost chain target.
func FromAssign(info *types.Info, stmt *ast.AssignStmt) (*chain.Assign, bool) {
	if stmt.Tok != token.ASSIGN || len(stmt.Lhs) < 2 {
		return nil, false
	}

	return Chain(info, stmt.Lhs, stmt.Rhs), true
}

// FromRange returns the assignment chain of a range statement assigning both key and value.
func FromRange(info *types.Info, stmt *ast.RangeStmt) (*chain.Assign, bool) {
	if stmt.Tok != token.ASSIGN || stmt.Key == nil || stmt.Value == nil {
		return nil, false
	}

	return Chain(info, []ast.Expr{stmt.Key, stmt.Value}, []ast.Expr{stmt.X}), true
}

// Chain builds the right-nested assignment of lhs, last target outermost.
func Chain(info *types.Info, lhs, rhs []ast.Expr) *chain.Assign {
	var value chain.Expr = &chain.Other{Span: valueSpan(rhs)}

	var root *chain.Assign
	for _, expr := range lhs {
		root = &chain.Assign{Lhs: Target(info, expr), Rhs: value}
		value = root
	}

	return root
}

// Target translates an assignment target.
func Target(info *types.Info, expr ast.Expr) chain.Expr {
	switch e := ast.Unparen(expr).(type) {
	case *ast.Ident:
		return &chain.Name{Node: e}

	case *ast.SelectorExpr:
		if _, ok := info.Selections[e]; !ok {
			return &chain.Name{Node: e} // qualified identifier
		}

		return &chain.Member{Node: e, X: Target(info, e.X)}

	case *ast.IndexExpr:
		return &chain.Member{Node: e, X: Target(info, e.X)}

	case *ast.StarExpr:
		return &chain.Member{Node: e, X: Target(info, e.X)}

	default:
		return &chain.Other{Span: chain.SpanOf(expr)}
	}
}

func valueSpan(rhs []ast.Expr) chain.Span {
	if len(rhs) == 0 {
		return chain.Span{}
	}

	return chain.Span{Pos: rhs[0].Pos(), End: rhs[len(rhs)-1].End()}
}
