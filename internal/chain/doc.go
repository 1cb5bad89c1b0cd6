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


// Package chain detects assignment targets that read a symbol which is reassigned
// by a later evaluated target of the same statement.
//
// The package works on a small, closed expression model. A host language binding
// translates its syntax into [Expr] values and answers symbol queries through a
// [Resolver].
//
// An assignment chain
//
//	T0 = T1 = … = Tk = V
//
// evaluates the addressing operands of all targets T0 through Tk before any
// assignment happens, and assigns Tk first and T0 last. A target Ti that reads a
// path like a.next to locate its storage therefore uses the old value when a
// target Tj with j > i reassigns that same path. Paths are compared by symbol
// from the root, so a write to b.next does not affect a read of a.next.
package chain
