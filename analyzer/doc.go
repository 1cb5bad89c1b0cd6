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


// Package analyzer implements the staleread static analysis pass.
//
// # Overview
//
// Go evaluates the index and pointer operands of all assignment targets before
// it assigns anything, and then assigns from left to right. A target that reaches
// its storage through a variable reassigned by an earlier target of the same
// statement therefore writes through the old value:
//
//	p, p.next = q, nil // p.next modifies the node p pointed to before, not q
//
// StaleRead reports such reads for pointers, maps, slices and other reference
// types. Reassigning a struct or array variable copies the value into the same
// storage, so targets located through it are not affected.
//
// # Example
//
// Before:
//
//	func push(head, n *Node) {
//	    head, head.next = n, head // head.next is the old head
//	}
//
// After:
//
//	func push(head, n *Node) {
//	    n.next = head
//	    head = n
//	}
//
// # Suppression
//
// A trailing //nolint:staleread comment suppresses the diagnostics of a statement,
// a //nolint:staleread comment before the package clause those of a file.
package analyzer
