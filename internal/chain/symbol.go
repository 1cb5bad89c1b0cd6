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

// Symbol is a declared variable, field or property.
//
// Two symbols denote the same declaration if and only if they compare equal.
type Symbol interface {
	Name() string
}

//go:generate go tool stringer -type Aliasing -linecomment

// Aliasing classifies what reassigning a symbol does to references obtained through it.
type Aliasing uint8

const (
	// Independent symbols hold self-contained values. Reassigning them cannot affect
	// storage located through their previous value.
	Independent Aliasing = iota // independent

	// Shared symbols hold references. Storage located through the previous value
	// stays reachable after reassignment.
	Shared // shared
)

// Resolver is the read-only semantic model of the host language.
type Resolver interface {
	// SymbolOf returns the symbol e denotes, or nil.
	SymbolOf(e Expr) Symbol

	// Aliasing classifies s by its declared type.
	Aliasing(s Symbol) Aliasing
}

// Classify returns the [Aliasing] of s. Unresolved symbols are [Independent].
func Classify(r Resolver, s Symbol) Aliasing {
	if s == nil {
		return Independent
	}

	return r.Aliasing(s)
}
