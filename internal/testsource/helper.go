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


package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Parse parses src as the body of package test.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File) {
	tb.Helper()

	const filename = "test.go"

	fset = token.NewFileSet()
	srcFile := wrapSource(src)

	f, err := parser.ParseFile(fset, filename, srcFile, parser.SkipObjectResolution|parser.ParseComments)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Check type checks f.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Nodes returns all nodes of type N in f, in source order.
func Nodes[N ast.Node](f *ast.File) []N {
	var (
		zero  N
		nodes []N
	)

	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder(zero) {
		nodes = append(nodes, c.Node().(N))
	}

	return nodes
}

// Text returns the source text between pos and end.
func Text(fset *token.FileSet, f *ast.File, src string, pos, end token.Pos) string {
	file := fset.File(f.FileStart)
	start, stop := file.Offset(pos)-headerLen, file.Offset(end)-headerLen

	if start < 0 || stop > len(src) || start > stop {
		return ""
	}

	return src[start:stop]
}

const (
	header    = "package " + testpkg + "\n\n"
	headerLen = len(header)
)

func wrapSource(src string) *bytes.Buffer {
	var srcFile bytes.Buffer
	srcFile.Grow(headerLen + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error

	return &srcFile
}
