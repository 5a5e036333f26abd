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
	"github.com/strataql/strata/internal/optimizer/exprutil"
	"github.com/strataql/strata/pkg/expr"
	"github.com/strataql/strata/pkg/plan"
)

// PushFiltersThroughProjects rewrites Filter(Project(p, list), cond)
// to Project(Filter(p, cond'), list) when every list entry is pure,
// inlining list's aliases into cond (§4.3).
func PushFiltersThroughProjects(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformDown(p, func(node plan.LogicalPlan) (plan.LogicalPlan, bool) {
		f, ok := node.(*plan.Filter)
		if !ok {
			return node, false
		}
		proj, ok := f.Child.(*plan.Project)
		if !ok {
			return node, false
		}
		if !allPure(proj.ProjectList) {
			return node, false
		}
		cond := exprutil.InlineAliases(proj.ProjectList, f.Condition)
		return plan.NewProject(plan.NewFilter(proj.Child, cond), proj.ProjectList), true
	}), nil
}

func allPure(list []expr.Expr) bool {
	for _, e := range list {
		if !e.IsPure() {
			return false
		}
	}
	return true
}

// PushFiltersThroughJoins pushes Filter(Join(left,right,Inner,cond),
// filterCond) conjuncts down to whichever side a conjunct refers to
// exclusively, folding the remainder into the join condition (§4.3).
// Non-inner joins are left untouched.
func PushFiltersThroughJoins(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformDown(p, func(node plan.LogicalPlan) (plan.LogicalPlan, bool) {
		f, ok := node.(*plan.Filter)
		if !ok {
			return node, false
		}
		j, ok := f.Child.(*plan.Join)
		if !ok || j.Type != plan.Inner {
			return node, false
		}
		leftIDs, rightIDs := j.Left.OutputIDSet(), j.Right.OutputIDSet()
		conjuncts := exprutil.SplitConjunction(exprutil.ToCNF(f.Condition))

		var leftPreds, rightPreds, commonPreds []expr.Expr
		for _, c := range conjuncts {
			refs := c.ReferenceIDs()
			switch {
			case refs.SubsetOf(leftIDs):
				leftPreds = append(leftPreds, c)
			case refs.SubsetOf(rightIDs):
				rightPreds = append(rightPreds, c)
			default:
				commonPreds = append(commonPreds, c)
			}
		}

		newLeft := j.Left
		if len(leftPreds) > 0 {
			newLeft = plan.NewFilter(j.Left, exprutil.JoinConjunction(leftPreds))
		}
		newRight := j.Right
		if len(rightPreds) > 0 {
			newRight = plan.NewFilter(j.Right, exprutil.JoinConjunction(rightPreds))
		}

		joinCond := j.Condition
		if len(commonPreds) > 0 {
			if joinCond == nil {
				joinCond = exprutil.JoinConjunction(commonPreds)
			} else {
				joinCond = expr.NewAnd(joinCond, exprutil.JoinConjunction(commonPreds))
			}
		}
		return plan.NewJoin(newLeft, newRight, plan.Inner, joinCond), true
	}), nil
}

// PushProjectsThroughLimits reorders Limit(Project(p, list), n) to
// Project(Limit(p, n), list) (§4.3): limit reduces row count before
// the expression-local projection is evaluated.
func PushProjectsThroughLimits(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformDown(p, func(node plan.LogicalPlan) (plan.LogicalPlan, bool) {
		l, ok := node.(*plan.Limit)
		if !ok {
			return node, false
		}
		proj, ok := l.Child.(*plan.Project)
		if !ok {
			return node, false
		}
		return plan.NewProject(plan.NewLimit(proj.Child, l.N), proj.ProjectList), true
	}), nil
}

// ReduceLimits collapses Limit(Limit(p, m), n) to
// Limit(p, If(n < m, n, m)) (§4.3).
func ReduceLimits(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformDown(p, func(node plan.LogicalPlan) (plan.LogicalPlan, bool) {
		outer, ok := node.(*plan.Limit)
		if !ok {
			return node, false
		}
		inner, ok := outer.Child.(*plan.Limit)
		if !ok {
			return node, false
		}
		tighter := expr.NewIf(expr.NewComparison(expr.Lt, outer.N, inner.N), outer.N, inner.N)
		return plan.NewLimit(inner.Child, tighter), true
	}), nil
}

// PushLimitsThroughUnions rewrites Limit(Union(L,R), n) to
// Limit(Union(Limit(L,n), Limit(R,n)), n) (§4.3).
func PushLimitsThroughUnions(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformDown(p, func(node plan.LogicalPlan) (plan.LogicalPlan, bool) {
		l, ok := node.(*plan.Limit)
		if !ok {
			return node, false
		}
		u, ok := l.Child.(*plan.Union)
		if !ok {
			return node, false
		}
		return plan.NewLimit(plan.NewUnion(plan.NewLimit(u.Left, l.N), plan.NewLimit(u.Right, l.N)), l.N), true
	}), nil
}
