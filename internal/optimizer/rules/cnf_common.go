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

// CNFConversion replaces every Filter's condition with its CNF form
// (§4.3).
func CNFConversion(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformDown(p, func(node plan.LogicalPlan) (plan.LogicalPlan, bool) {
		f, ok := node.(*plan.Filter)
		if !ok {
			return node, false
		}
		cnf := exprutil.ToCNF(f.Condition)
		if expr.Equal(cnf, f.Condition) {
			return node, false
		}
		return plan.NewFilter(f.Child, cnf), true
	}), nil
}

// EliminateCommonPredicates collapses `a ∧ b`/`a ∨ b` with a equal b
// to a, and `If(c,y,n)` with y equal n to Coalesce(c,y) (§4.3).
func EliminateCommonPredicates(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformAllExpressions(p, func(e expr.Expr) (expr.Expr, bool) {
		switch v := e.(type) {
		case *expr.And:
			if expr.Equal(v.Left, v.Right) {
				return v.Left, true
			}
		case *expr.Or:
			if expr.Equal(v.Left, v.Right) {
				return v.Left, true
			}
		case *expr.If:
			if expr.Equal(v.Then, v.Else) {
				return expr.NewCoalesce(v.Cond, v.Then), true
			}
		}
		return e, false
	}), nil
}

// MergeFilters collapses Filter(Filter(p, inner), outer) into
// Filter(p, inner ∧ outer) (§4.3).
func MergeFilters(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformDown(p, func(node plan.LogicalPlan) (plan.LogicalPlan, bool) {
		outer, ok := node.(*plan.Filter)
		if !ok {
			return node, false
		}
		inner, ok := outer.Child.(*plan.Filter)
		if !ok {
			return node, false
		}
		return plan.NewFilter(inner.Child, expr.NewAnd(inner.Condition, outer.Condition)), true
	}), nil
}

// EliminateSubqueries removes every Subquery node and clears the
// qualifier of every remaining AttributeRef (§4.3).
func EliminateSubqueries(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	unwrapped := plan.TransformDown(p, func(node plan.LogicalPlan) (plan.LogicalPlan, bool) {
		sq, ok := node.(*plan.Subquery)
		if !ok {
			return node, false
		}
		return sq.Child, true
	})
	return plan.TransformAllExpressions(unwrapped, func(e expr.Expr) (expr.Expr, bool) {
		ref, ok := e.(*expr.AttributeRef)
		if !ok || ref.Qualifier == "" {
			return e, false
		}
		cleared := *ref
		cleared.Qualifier = ""
		return &cleared, true
	}), nil
}
