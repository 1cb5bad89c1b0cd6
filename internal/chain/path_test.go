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
	"reflect"
	"testing"

	. "fillmore-labs.com/staleread/internal/chain"
)

func TestDecompose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		targets int
		ok      bool
	}{
		{"single", "a = b", 0, false},
		{"pair", "a.Field = a = b", 2, true},
		{"triple", "a.Property = c = a = b", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, _ := parse(tt.src).(*Assign)

			c, ok := Decompose(root)
			if ok != tt.ok {
				t.Fatalf("Decompose(%q) ok = %t, want %t", tt.src, ok, tt.ok)
			}

			if got := len(c.Targets); got != tt.targets {
				t.Errorf("Decompose(%q) has %d targets, want %d", tt.src, got, tt.targets)
			}

			if ok {
				if _, isValue := c.Value.(*Other); !isValue {
					t.Errorf("Decompose(%q) value = %T, want *Other", tt.src, c.Value)
				}
			}
		})
	}
}

func TestDecomposeNil(t *testing.T) {
	t.Parallel()

	if _, ok := Decompose(nil); ok {
		t.Error("Decompose(nil) reported a chain")
	}
}

func TestPath(t *testing.T) {
	t.Parallel()

	r := newTestResolver(Shared, names...)

	type node struct {
		name string
		role Role
	}

	tests := []struct {
		name   string
		target string
		path   []node
		reads  int
	}{
		{"name", "a", []node{{"a", Root}}, 0},
		{"member", "a.Field", []node{{"a", Root}, {"Field", Leaf}}, 1},
		{"chain", "a.Property.Property", []node{{"a", Root}, {"Property", Intermediate}, {"Property", Leaf}}, 2},
		{"unresolved", "z.Field", []node{{"Field", Leaf}}, 0},
		{"call", "f().Field", []node{{"Field", Leaf}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			target := parse(tt.target + " = b").(*Assign).Lhs

			var got []node
			for _, n := range Path(r, target) {
				got = append(got, node{n.Symbol.Name(), n.Role})
			}

			if !reflect.DeepEqual(got, tt.path) {
				t.Errorf("Path(%q) = %v, want %v", tt.target, got, tt.path)
			}

			if got := len(Reads(r, target)); got != tt.reads {
				t.Errorf("Reads(%q) has %d nodes, want %d", tt.target, got, tt.reads)
			}
		})
	}
}

func TestKey(t *testing.T) {
	t.Parallel()

	r := newTestResolver(Shared, names...)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"name", "a", []string{"a"}},
		{"member", "a.Field", []string{"a", "Field"}},
		{"chain", "a.next.next", []string{"a", "next", "next"}},
		{"unresolved_root", "z.Field", nil},
		{"unresolved_member", "a.z.Field", nil},
		{"call", "f().Field", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			target := parse(tt.target + " = b").(*Assign).Lhs

			var got []string
			for _, s := range Key(r, target) {
				got = append(got, s.Name())
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Key(%q) = %v, want %v", tt.target, got, tt.want)
			}

			if path := Path(r, target); tt.want != nil && !reflect.DeepEqual(path[len(path)-1].Key, Key(r, target)) {
				t.Errorf("Path(%q) ends with key %v, want %v", tt.target, path[len(path)-1].Key, Key(r, target))
			}
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	r := newTestResolver(Shared, "a")

	if got := Classify(r, nil); got != Independent {
		t.Errorf("Classify(nil) = %v, want %v", got, Independent)
	}

	if got := Classify(r, Written(r, parse("a = b").(*Assign).Lhs)); got != Shared {
		t.Errorf("Classify(a) = %v, want %v", got, Shared)
	}
}
