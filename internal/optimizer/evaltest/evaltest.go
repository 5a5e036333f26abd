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

// Package evaltest is a tiny row-bag interpreter used only by the
// semantic-soundness property test: it materializes a LocalRelation
// through Project/Filter/Limit/Union/Join so a test can compare a
// plan's row bag before and after optimization. It is not part of the
// optimizer's own contract, which never executes a plan (§5 Non-goals).
package evaltest

import (
	"fmt"

	"github.com/strataql/strata/pkg/expr"
	"github.com/strataql/strata/pkg/plan"
)

// Row is a resolved row, keyed by the ExpressionID of the attribute
// that produced each value rather than by position, so rows surviving
// a PruneColumns/MergeProjects rewrite still compare equal.
type Row map[expr.ID]expr.Value

// Evaluate materializes p's output rows. It only understands the
// resolved fragment of the plan algebra FoldConstantFilters/
// PruneColumns/the pushdown rules can produce: LocalRelation, Project,
// Filter, Limit, Union, inner Join, and Subquery.
func Evaluate(p plan.LogicalPlan) ([]Row, error) {
	switch n := p.(type) {
	case *plan.LocalRelation:
		out := n.Output()
		rows := make([]Row, len(n.Rows))
		for i, r := range n.Rows {
			row := make(Row, len(out))
			for j, a := range out {
				if j < len(r) {
					row[a.ID] = r[j]
				}
			}
			rows[i] = row
		}
		return rows, nil
	case *plan.Project:
		childRows, err := Evaluate(n.Child)
		if err != nil {
			return nil, err
		}
		out := make([]Row, len(childRows))
		for i, r := range childRows {
			row := make(Row, len(n.ProjectList))
			for _, e := range n.ProjectList {
				id, v, err := evalProjectEntry(e, r)
				if err != nil {
					return nil, err
				}
				row[id] = v
			}
			out[i] = row
		}
		return out, nil
	case *plan.Filter:
		childRows, err := Evaluate(n.Child)
		if err != nil {
			return nil, err
		}
		var out []Row
		for _, r := range childRows {
			v, err := eval(n.Condition, r)
			if err != nil {
				return nil, err
			}
			if b, ok := v.Val.(bool); ok && b {
				out = append(out, r)
			}
		}
		return out, nil
	case *plan.Limit:
		childRows, err := Evaluate(n.Child)
		if err != nil {
			return nil, err
		}
		v, err := eval(n.N, Row{})
		if err != nil {
			return nil, err
		}
		limit, ok := v.Val.(int64)
		if !ok {
			return nil, fmt.Errorf("evaltest: Limit.N did not fold to an INT")
		}
		if int64(len(childRows)) > limit {
			childRows = childRows[:limit]
		}
		return childRows, nil
	case *plan.Union:
		left, err := Evaluate(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := Evaluate(n.Right)
		if err != nil {
			return nil, err
		}
		return append(append([]Row{}, left...), right...), nil
	case *plan.Join:
		if n.Type != plan.Inner {
			return nil, fmt.Errorf("evaltest: only Inner joins are supported")
		}
		left, err := Evaluate(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := Evaluate(n.Right)
		if err != nil {
			return nil, err
		}
		var out []Row
		for _, l := range left {
			for _, r := range right {
				merged := make(Row, len(l)+len(r))
				for k, v := range l {
					merged[k] = v
				}
				for k, v := range r {
					merged[k] = v
				}
				if n.Condition != nil {
					v, err := eval(n.Condition, merged)
					if err != nil {
						return nil, err
					}
					if b, ok := v.Val.(bool); !ok || !b {
						continue
					}
				}
				out = append(out, merged)
			}
		}
		return out, nil
	case *plan.Subquery:
		return Evaluate(n.Child)
	default:
		return nil, fmt.Errorf("evaltest: unsupported plan node %T", p)
	}
}

func evalProjectEntry(e expr.Expr, row Row) (expr.ID, expr.Value, error) {
	v, err := eval(e, row)
	if err != nil {
		return 0, expr.Value{}, err
	}
	switch t := e.(type) {
	case expr.Typed:
		return t.ExprID(), v, nil
	default:
		return 0, expr.Value{}, fmt.Errorf("evaltest: project entry %T has no stable ID", e)
	}
}

// eval evaluates e against row, recursing by hand instead of relying on
// expr.Evaluator.Eval (which only covers attribute-free expressions):
// an AttributeRef looks itself up in row, everything else composes the
// same semantics expr's own Eval implementations define.
func eval(e expr.Expr, row Row) (expr.Value, error) {
	switch n := e.(type) {
	case *expr.Literal:
		return expr.Value{Type: n.Type, Val: n.Val}, nil
	case *expr.AttributeRef:
		v, ok := row[n.ID]
		if !ok {
			return expr.Value{}, fmt.Errorf("evaltest: row has no value for attribute %s (id %d)", n.Name, n.ID)
		}
		return v, nil
	case *expr.GeneratedAttribute:
		v, ok := row[n.ID]
		if !ok {
			return expr.Value{}, fmt.Errorf("evaltest: row has no value for attribute %s (id %d)", n.Name, n.ID)
		}
		return v, nil
	case *expr.Alias:
		return eval(n.Child, row)
	case *expr.GeneratedAlias:
		return eval(n.Child, row)
	case *expr.Cast:
		v, err := eval(n.Child, row)
		if err != nil {
			return expr.Value{}, err
		}
		return castValue(v, n.Target)
	case *expr.Arithmetic:
		return evalArith(n, row)
	case *expr.Comparison:
		return evalCompare(n, row)
	case *expr.And:
		l, err := eval(n.Left, row)
		if err != nil {
			return expr.Value{}, err
		}
		if b, ok := l.Val.(bool); ok && !b {
			return expr.Value{Type: expr.Bool, Val: false}, nil
		}
		r, err := eval(n.Right, row)
		if err != nil {
			return expr.Value{}, err
		}
		if b, ok := r.Val.(bool); ok && !b {
			return expr.Value{Type: expr.Bool, Val: false}, nil
		}
		if l.Val == nil || r.Val == nil {
			return expr.Value{Type: expr.Bool, Val: nil}, nil
		}
		return expr.Value{Type: expr.Bool, Val: true}, nil
	case *expr.Or:
		l, err := eval(n.Left, row)
		if err != nil {
			return expr.Value{}, err
		}
		if b, ok := l.Val.(bool); ok && b {
			return expr.Value{Type: expr.Bool, Val: true}, nil
		}
		r, err := eval(n.Right, row)
		if err != nil {
			return expr.Value{}, err
		}
		if b, ok := r.Val.(bool); ok && b {
			return expr.Value{Type: expr.Bool, Val: true}, nil
		}
		if l.Val == nil || r.Val == nil {
			return expr.Value{Type: expr.Bool, Val: nil}, nil
		}
		return expr.Value{Type: expr.Bool, Val: false}, nil
	case *expr.Not:
		v, err := eval(n.Child, row)
		if err != nil {
			return expr.Value{}, err
		}
		if v.Val == nil {
			return expr.Value{Type: expr.Bool, Val: nil}, nil
		}
		b, _ := v.Val.(bool)
		return expr.Value{Type: expr.Bool, Val: !b}, nil
	case *expr.If:
		c, err := eval(n.Cond, row)
		if err != nil {
			return expr.Value{}, err
		}
		b, _ := c.Val.(bool)
		if c.Val != nil && b {
			return eval(n.Then, row)
		}
		return eval(n.Else, row)
	case *expr.Coalesce:
		for _, a := range n.Args {
			v, err := eval(a, row)
			if err != nil {
				return expr.Value{}, err
			}
			if v.Val != nil {
				return v, nil
			}
		}
		return expr.Value{Type: n.DataType(), Val: nil}, nil
	case *expr.IsNull:
		v, err := eval(n.Child, row)
		if err != nil {
			return expr.Value{}, err
		}
		return expr.Value{Type: expr.Bool, Val: v.Val == nil}, nil
	case *expr.IsNotNull:
		v, err := eval(n.Child, row)
		if err != nil {
			return expr.Value{}, err
		}
		return expr.Value{Type: expr.Bool, Val: v.Val != nil}, nil
	default:
		return expr.Value{}, fmt.Errorf("evaltest: unsupported expression %T", e)
	}
}
