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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataql/strata/pkg/expr"
	"github.com/strataql/strata/pkg/plan"
)

func col(id expr.ID, name string, t expr.DataType) *expr.AttributeRef {
	return expr.NewAttributeRef(id, name, t, false)
}

func TestFoldConstants(t *testing.T) {
	a := col(1, "a", expr.Int)
	rel := plan.NewLocalRelation("t", []*expr.AttributeRef{a}, nil)
	sum := expr.NewArithmetic(expr.Add, expr.NewLiteral(expr.Int, int64(1)), expr.NewLiteral(expr.Int, int64(2)))
	p := plan.NewFilter(rel, expr.NewComparison(expr.Eq, a, sum))

	out, err := FoldConstants(p)
	require.NoError(t, err)
	f := out.(*plan.Filter)
	cmp := f.Condition.(*expr.Comparison)
	lit, ok := cmp.Right.(*expr.Literal)
	require.True(t, ok)
	assert.Equal(t, int64(3), lit.Val)
}

func TestFoldLogicalPredicates(t *testing.T) {
	a := col(1, "a", expr.Bool)
	rel := plan.NewLocalRelation("t", []*expr.AttributeRef{a}, nil)

	cases := []struct {
		name string
		in   expr.Expr
		want expr.Expr
	}{
		{"or-true-left", expr.NewOr(expr.NewLiteral(expr.Bool, true), a), expr.NewLiteral(expr.Bool, true)},
		{"and-false-right", expr.NewAnd(a, expr.NewLiteral(expr.Bool, false)), expr.NewLiteral(expr.Bool, false)},
		{"and-same", expr.NewAnd(a, a), a},
		{"if-true-cond", expr.NewIf(expr.NewLiteral(expr.Bool, true), expr.NewLiteral(expr.Int, int64(1)), expr.NewLiteral(expr.Int, int64(2))), expr.NewLiteral(expr.Int, int64(1))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := plan.NewFilter(rel, expr.NewComparison(expr.Eq, tc.in, tc.in))
			out, err := FoldLogicalPredicates(plan.NewFilter(rel, tc.in))
			require.NoError(t, err)
			f := out.(*plan.Filter)
			assert.True(t, expr.Equal(tc.want, f.Condition), "got %s want %s", f.Condition, tc.want)
			_ = p
		})
	}
}
