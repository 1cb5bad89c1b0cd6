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


package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/staleread/internal/astutil"
	"fillmore-labs.com/staleread/internal/chain"
	"fillmore-labs.com/staleread/internal/config"
	"fillmore-labs.com/staleread/internal/goexpr"
	"fillmore-labs.com/staleread/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is not available.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the analysis pass.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("staleread: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "StaleRead")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	resolver := goexpr.Resolver{Info: p.TypesInfo}

	nodeTypes := []ast.Node{(*ast.AssignStmt)(nil)}
	if r.Behavior.Enabled(config.RangeStatements) {
		nodeTypes = append(nodeTypes, (*ast.RangeStmt)(nil))
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		// Loop over all assignments in this file, including those in function literals
		for c := range f.Preorder(nodeTypes...) {
			stmt := c.Node()

			root, ok := assignment(p, stmt)
			if !ok {
				continue
			}

			findings, err := chain.Analyze(ctx, resolver, root)
			if err != nil {
				return nil, fmt.Errorf("staleread: %w", err)
			}

			report.Findings(ctx, p, currentFile, stmt, findings)
		}
	}

	return nil, nil
}

// assignment returns the assignment chain of stmt, if it has more than one target.
func assignment(p *analysis.Pass, stmt ast.Node) (*chain.Assign, bool) {
	info := p.TypesInfo

	switch n := stmt.(type) {
	case *ast.AssignStmt:
		return goexpr.FromAssign(info, n)

	case *ast.RangeStmt:
		return goexpr.FromRange(info, n)

	default:
		astutil.InternalError(p, stmt, "Unexpected node type: %T", stmt)

		return nil, false
	}
}
