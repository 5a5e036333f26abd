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

// Package rules is the rule library of §4.3, one function per rule,
// each a total LogicalPlan -> LogicalPlan rewrite built out of
// pkg/plan.TransformAllExpressions/TransformDown and the pattern-match
// helpers in internal/optimizer/exprutil and internal/optimizer/fold.
package rules

import (
	"github.com/strataql/strata/internal/optimizer/fold"
	"github.com/strataql/strata/pkg/expr"
	"github.com/strataql/strata/pkg/plan"
)

// FoldConstants replaces every foldable subexpression with a Literal.
func FoldConstants(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformAllExpressions(p, fold.FoldNode), nil
}

// FoldLogicalPredicates applies the tautological boolean-lattice
// simplifications of §4.3.
func FoldLogicalPredicates(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformAllExpressions(p, func(e expr.Expr) (expr.Expr, bool) {
		return foldLogicalPredicate(e)
	}), nil
}

func foldLogicalPredicate(e expr.Expr) (expr.Expr, bool) {
	switch v := e.(type) {
	case *expr.Or:
		if isTrueLiteral(v.Left) || isTrueLiteral(v.Right) {
			return expr.NewLiteral(expr.Bool, true), true
		}
		if expr.Same(v.Left, v.Right) {
			return v.Left, true
		}
	case *expr.And:
		if isFalseLiteral(v.Left) || isFalseLiteral(v.Right) {
			return expr.NewLiteral(expr.Bool, false), true
		}
		if expr.Same(v.Left, v.Right) {
			return v.Left, true
		}
	case *expr.If:
		if isTrueLiteral(v.Cond) {
			return v.Then, true
		}
		if isFalseLiteral(v.Cond) {
			return v.Else, true
		}
	}
	return e, false
}

func isTrueLiteral(e expr.Expr) bool {
	l, ok := e.(*expr.Literal)
	return ok && l.Type == expr.Bool && l.Val == true
}

func isFalseLiteral(e expr.Expr) bool {
	l, ok := e.(*expr.Literal)
	return ok && l.Type == expr.Bool && l.Val == false
}
