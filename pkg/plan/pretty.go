// Copyright 2026 Strata Authors
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

package plan

import (
	"strings"

	"github.com/gdexlab/go-render/render"
)

// PrettyTree renders p as an indented textual tree, stable across runs
// for structurally equal trees (§6 Diagnostics, §8 testable property).
// ExpressionIDs are printed verbatim, so callers comparing trees built
// from independent ID allocations must compare structurally (expr.Equal
// / plan.Equal) rather than diffing this string.
func PrettyTree(p LogicalPlan) string {
	var b strings.Builder
	prettyTreeRec(&b, p, 0)
	return b.String()
}

func prettyTreeRec(b *strings.Builder, p LogicalPlan, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(p.String())
	b.WriteByte('\n')
	for _, c := range p.Children() {
		prettyTreeRec(b, c, depth+1)
	}
}

// DebugDump renders a full-fidelity, field-by-field dump of p using
// go-render, for the executor's advisory before/after diagnostic
// channel (§4.2, §6) where PrettyTree's terse form loses too much
// detail to be useful in a bug report.
func DebugDump(p LogicalPlan) string {
	return render.AsCode(p)
}
