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

import (
	"cmp"
	"context"
	"slices"
)

// Finding is a stale read: a target reads Symbol to locate its storage, while a
// later evaluated target of the same chain reassigns Symbol.
type Finding struct {
	// Span covers the reading target up to and including the stale read.
	Span Span

	// Symbol is the symbol read before its reassignment.
	Symbol Symbol

	// Depth is the chain index of the reading target, 0 for the outermost.
	Depth int

	// Writer is the span of the target reassigning Symbol.
	Writer Span
}

// Analyze runs the detection on the assignment root.
//
// It returns ctx.Err() when ctx is already done, and no findings when root does
// not form a chain of at least two targets.
func Analyze(ctx context.Context, r Resolver, root Expr) ([]Finding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a, ok := root.(*Assign)
	if !ok {
		return nil, nil
	}

	c, ok := Decompose(a)
	if !ok {
		return nil, nil
	}

	return Detect(r, c), nil
}

// Detect returns the stale reads of c, ordered by position and then by chain depth.
//
// Targets are assigned innermost first. A target Ti is stale when it reads an
// object through a [Shared] symbol whose access path equals the [Key] of a
// target Tj (j > i) assigned before it. Each target yields at most one finding,
// at the longest such prefix of its instance: the reads before it only serve
// to locate the object already reported.
func Detect(r Resolver, c Chain) []Finding {
	n := len(c.Targets)
	if n < 2 {
		return nil
	}

	written := make([][]Symbol, n) // nil for the outermost target and unshared writes
	for j := 1; j < n; j++ {
		t := c.Targets[j]
		if s := Written(r, t); s != nil && Classify(r, s) == Shared {
			written[j] = Key(r, t)
		}
	}

	var findings []Finding

	for i, t := range c.Targets[:n-1] {
		node, j, ok := staleRead(Reads(r, t), written, i)
		if !ok {
			continue
		}

		findings = append(findings, Finding{Span: node.Span, Symbol: node.Symbol, Depth: i, Writer: SpanOf(c.Targets[j])})
	}

	slices.SortStableFunc(findings, compareFindings)

	return findings
}

// staleRead returns the last of reads addressed by a path written by a target
// inside depth i, together with the nearest such target.
func staleRead(reads []AccessNode, written [][]Symbol, i int) (AccessNode, int, bool) {
	for _, node := range slices.Backward(reads) {
		if node.Key == nil {
			continue
		}

		for j := i + 1; j < len(written); j++ {
			if slices.Equal(written[j], node.Key) {
				return node, j, true
			}
		}
	}

	return AccessNode{}, 0, false
}

func compareFindings(a, b Finding) int {
	if c := cmp.Compare(a.Span.Pos, b.Span.Pos); c != 0 {
		return c
	}

	if c := cmp.Compare(a.Depth, b.Depth); c != 0 {
		return c
	}

	return cmp.Compare(a.Span.End, b.Span.End)
}
