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

// ReduceNegations pushes Not inward and collapses redundancies (§4.3).
func ReduceNegations(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformAllExpressions(p, func(e expr.Expr) (expr.Expr, bool) {
		return reduceNegation(e)
	}), nil
}

func reduceNegation(e expr.Expr) (expr.Expr, bool) {
	switch v := e.(type) {
	case *expr.Not:
		switch c := v.Child.(type) {
		case *expr.Not:
			return c.Child, true
		case *expr.Comparison:
			return expr.NewComparison(c.Op.Negate(), c.Left, c.Right), true
		case *expr.IsNull:
			return expr.NewIsNotNull(c.Child), true
		case *expr.IsNotNull:
			return expr.NewIsNull(c.Child), true
		}
	case *expr.If:
		if c, ok := v.Cond.(*expr.Not); ok {
			return expr.NewIf(c.Child, v.Else, v.Then), true
		}
	case *expr.And:
		if negatesSame(v.Left, v.Right) {
			return expr.NewLiteral(expr.Bool, false), true
		}
	case *expr.Or:
		if negatesSame(v.Left, v.Right) {
			return expr.NewLiteral(expr.Bool, true), true
		}
	}
	return e, false
}

// negatesSame reports whether one of a, b is Not of the other and the
// wrapped operand is `same` to the remaining side, e.g. a ∧ ¬b with
// a same b.
func negatesSame(a, b expr.Expr) bool {
	if n, ok := b.(*expr.Not); ok && expr.Same(a, n.Child) {
		return true
	}
	if n, ok := a.(*expr.Not); ok && expr.Same(b, n.Child) {
		return true
	}
	return false
}

// ReduceCasts collapses redundant and nested casts (§4.3).
func ReduceCasts(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformAllExpressions(p, func(e expr.Expr) (expr.Expr, bool) {
		c, ok := e.(*expr.Cast)
		if !ok {
			return e, false
		}
		if c.Child.DataType() == c.Target {
			return c.Child, true
		}
		// Composing two casts is only collapsed once the composed cast
		// is itself well-typed (§9 open question (a)); an invalid
		// composition is left as two nested casts rather than silently
		// producing a malformed one.
		if inner, ok := c.Child.(*expr.Cast); ok && expr.CastValid(inner.Child.DataType(), c.Target) {
			return expr.NewCast(inner.Child, c.Target), true
		}
		return e, false
	}), nil
}

// ReduceAliases collapses Alias(Alias(child, _, _), name, id) to
// Alias(child, name, id): the outer name/ID survive (§4.3).
func ReduceAliases(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformAllExpressions(p, func(e expr.Expr) (expr.Expr, bool) {
		switch outer := e.(type) {
		case *expr.Alias:
			if inner, ok := outer.Child.(*expr.Alias); ok {
				return expr.NewAlias(inner.Child, outer.Name, outer.ID), true
			}
			if inner, ok := outer.Child.(*expr.GeneratedAlias); ok {
				return expr.NewAlias(inner.Child, outer.Name, outer.ID), true
			}
		case *expr.GeneratedAlias:
			if inner, ok := outer.Child.(*expr.Alias); ok {
				return expr.NewGeneratedAlias(inner.Child, outer.Name, outer.ID), true
			}
			if inner, ok := outer.Child.(*expr.GeneratedAlias); ok {
				return expr.NewGeneratedAlias(inner.Child, outer.Name, outer.ID), true
			}
		}
		return e, false
	}), nil
}
