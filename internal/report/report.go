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


package report

import (
	"context"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/staleread/internal/astutil"
	"fillmore-labs.com/staleread/internal/chain"
)

// Findings reports the stale reads of stmt, in order.
func Findings(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, stmt ast.Node, findings []chain.Finding) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "ReportFindings").End()

	if currentFile.NoLintComment(stmt) {
		return
	}

	for _, f := range findings {
		p.Report(Diagnostic(f))
	}
}

// Diagnostic converts a finding into a diagnostic pointing at the stale read.
func Diagnostic(f chain.Finding) analysis.Diagnostic {
	name := f.Symbol.Name()

	return analysis.Diagnostic{
		Pos:     f.Span.Pos,
		End:     f.Span.End,
		Message: fmt.Sprintf("'%s' is read to locate this target and reassigned in the same statement (sr:stale)", name),
		Related: []analysis.RelatedInformation{{
			Pos:     f.Writer.Pos,
			End:     f.Writer.End,
			Message: fmt.Sprintf("'%s' is reassigned here before this target", name),
		}},
	}
}
