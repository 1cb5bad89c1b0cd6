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


package a

type Node struct {
	next *Node
	prev *Node
	val  int
}

type Pair struct {
	left, right int
	node        *Node
}

func pointers(p, q *Node) {
	p, p.next = q, nil // want "'p' is read to locate this target and reassigned in the same statement"
	p.next, p = nil, q
	p, p.next, p.next.val = q, nil, 1 // want "'p' is read" "'next' is read"
	p, *p = q, Node{}                 // want "'p' is read"
	p.next, p.next.val = nil, 1       // want "'next' is read"
	p, (p).val = q, 1                 // want "'p' is read"
	p, p.val, p.next = q, 1, nil      // want "'p' is read" "'p' is read"
	p, p.next.val = q, 1              // want "'p' is read"
}

func push(head, n *Node) *Node {
	head, head.next = n, head // want "'head' is read"

	return head
}

func containers(m, n map[string]int, xs, ys []int) {
	m, m["k"] = n, 1  // want "'m' is read"
	xs, xs[0] = ys, 1 // want "'xs' is read"
	m["k"], m = 1, n
}

func values(a, b Pair, arr [2]int) {
	a, a.left = b, 1
	arr, arr[0] = [2]int{}, 1
	a, a.node.val = b, 1
}

func literals(p, q *Node) func() {
	return func() {
		p, p.val = q, 1 // want "'p' is read"
	}
}

func suppressed(p, q *Node) {
	p, p.next = q, nil //nolint:staleread
	p, p.next = q,
		nil //nolint:all
}

func ranges(p *Node, index map[*Node]int) {
	for p, p.val = range index { // want "'p' is read"
	}

	for p, p.val = range index { //nolint:staleread
	}
}

func unrelated(p, q *Node, a, b int) {
	a, b = b, a
	p.next, q.next = q, p
	q.next, p.next.val = nil, 1
	p.prev.next, p.next.prev = p.next, p.prev
	p.val = 1
}

func unlink(n *Node) {
	n.prev.next, n.next.prev = n.next, n.prev
	n.next, n.prev = nil, nil
}
