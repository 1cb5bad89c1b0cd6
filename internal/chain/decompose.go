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

// Chain is the flattened form of T0 = T1 = … = Tk = V.
type Chain struct {
	// Targets holds T0 through Tk, outermost first. Tk is assigned first, T0 last.
	Targets []Expr

	// Value is the assigned value V.
	Value Expr
}

// Decompose flattens the right-nested assignment root into a [Chain].
//
// It reports false when root assigns a single target, since there is no inner
// reassignment that could invalidate a read.
func Decompose(root *Assign) (Chain, bool) {
	var (
		targets []Expr
		e       Expr = root
	)

	for {
		a, ok := e.(*Assign)
		if !ok || a == nil {
			break
		}

		targets = append(targets, a.Lhs)
		e = a.Rhs
	}

	if len(targets) < 2 {
		return Chain{}, false
	}

	return Chain{Targets: targets, Value: e}, true
}
