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

package rules

import (
	"github.com/strataql/strata/pkg/expr"
	"github.com/strataql/strata/pkg/plan"
)

// FoldConstantFilters drops a Filter whose condition has folded to the
// literal TRUE, and collapses a Filter whose condition has folded to
// FALSE (or NULL) to an empty relation with the same output. Optional
// (§9(c)): not part of the default "Optimizations" batch, since an
// always-false filter that rewrites past data sources with side-effect
// contracts is beyond this algebra's assumptions.
func FoldConstantFilters(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformDown(p, func(node plan.LogicalPlan) (plan.LogicalPlan, bool) {
		f, ok := node.(*plan.Filter)
		if !ok {
			return node, false
		}
		lit, ok := f.Condition.(*expr.Literal)
		if !ok || lit.Type != expr.Bool {
			return node, false
		}
		if lit.Val == true {
			return f.Child, true
		}
		return plan.NewLocalRelation("", f.Output(), nil), true
	}), nil
}

// PruneColumns narrows LocalRelation.output and Project.projectList to
// only the attribute IDs actually referenced transitively from the
// plan root (supplemented feature, grounded in the teacher's
// columnPruner). Run Once, ahead of the main batch, and off by
// default: it changes output schemas structurally, which would
// otherwise violate output-schema stability relative to the main
// batch's own input.
func PruneColumns(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	needed := p.OutputIDSet()
	for _, e := range plan.CollectFromAllExpressions(p, func(expr.Expr) bool { return true }) {
		for id := range e.ReferenceIDs() {
			needed[id] = struct{}{}
		}
	}
	return pruneRec(p, needed), nil
}

func pruneRec(p plan.LogicalPlan, needed expr.IDSet) plan.LogicalPlan {
	switch v := p.(type) {
	case *plan.LocalRelation:
		out := v.Output()
		kept := make([]*expr.AttributeRef, 0, len(out))
		keptIdx := make([]int, 0, len(out))
		for i, a := range out {
			if needed.Contains(a.ID) {
				kept = append(kept, a)
				keptIdx = append(keptIdx, i)
			}
		}
		if len(kept) == len(out) {
			return v
		}
		var rows []plan.Row
		for _, r := range v.Rows {
			row := make(plan.Row, 0, len(keptIdx))
			for _, i := range keptIdx {
				if i < len(r) {
					row = append(row, r[i])
				}
			}
			rows = append(rows, row)
		}
		return plan.NewLocalRelation(v.Name, kept, rows)
	case *plan.Project:
		kept := make([]expr.Expr, 0, len(v.ProjectList))
		for _, e := range v.ProjectList {
			id := projectListEntryID(e)
			if id == 0 || needed.Contains(id) {
				kept = append(kept, e)
			}
		}
		newChild := pruneRec(v.Child, needed)
		if len(kept) == len(v.ProjectList) && newChild == v.Child {
			return v
		}
		return plan.NewProject(newChild, kept)
	default:
		children := p.Children()
		if len(children) == 0 {
			return p
		}
		newChildren := make([]plan.LogicalPlan, len(children))
		changed := false
		for i, c := range children {
			newChildren[i] = pruneRec(c, needed)
			if newChildren[i] != c {
				changed = true
			}
		}
		if !changed {
			return p
		}
		return p.WithChildren(newChildren)
	}
}

func projectListEntryID(e expr.Expr) expr.ID {
	if t, ok := e.(expr.Typed); ok {
		return t.ExprID()
	}
	return 0
}
