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

func filterOf(cond expr.Expr) *plan.Filter {
	a := col(1, "a", expr.Int)
	rel := plan.NewLocalRelation("t", []*expr.AttributeRef{a}, nil)
	return plan.NewFilter(rel, cond)
}

func TestReduceNegations(t *testing.T) {
	a := col(1, "a", expr.Int)

	t.Run("double-negation", func(t *testing.T) {
		cmp := expr.NewComparison(expr.Gt, a, expr.NewLiteral(expr.Int, int64(1)))
		in := expr.NewNot(expr.NewNot(cmp))
		out, err := ReduceNegations(filterOf(in))
		require.NoError(t, err)
		assert.True(t, expr.Equal(cmp, out.(*plan.Filter).Condition))
	})

	t.Run("negated-comparison", func(t *testing.T) {
		cmp := expr.NewComparison(expr.Gt, a, expr.NewLiteral(expr.Int, int64(1)))
		in := expr.NewNot(cmp)
		out, err := ReduceNegations(filterOf(in))
		require.NoError(t, err)
		want := expr.NewComparison(expr.Lte, a, expr.NewLiteral(expr.Int, int64(1)))
		assert.True(t, expr.Equal(want, out.(*plan.Filter).Condition))
	})

	t.Run("and-negates-same-is-false", func(t *testing.T) {
		in := expr.NewAnd(a, expr.NewNot(a))
		out, err := ReduceNegations(filterOf(in))
		require.NoError(t, err)
		assert.True(t, expr.Equal(expr.NewLiteral(expr.Bool, false), out.(*plan.Filter).Condition))
	})

	t.Run("or-negates-same-is-true", func(t *testing.T) {
		in := expr.NewOr(a, expr.NewNot(a))
		out, err := ReduceNegations(filterOf(in))
		require.NoError(t, err)
		assert.True(t, expr.Equal(expr.NewLiteral(expr.Bool, true), out.(*plan.Filter).Condition))
	})
}

func TestReduceCasts(t *testing.T) {
	a := col(1, "a", expr.Int)

	t.Run("identity-cast-eliminated", func(t *testing.T) {
		in := expr.NewCast(a, expr.Int)
		out, err := ReduceCasts(filterOf(expr.NewComparison(expr.Eq, in, in)))
		require.NoError(t, err)
		cmp := out.(*plan.Filter).Condition.(*expr.Comparison)
		assert.True(t, expr.Equal(a, cmp.Left))
	})

	t.Run("nested-cast-collapses-when-valid", func(t *testing.T) {
		nested := expr.NewCast(expr.NewCast(a, expr.Float), expr.String)
		out, err := ReduceCasts(filterOf(expr.NewComparison(expr.Eq, nested, expr.NewLiteral(expr.String, "x"))))
		require.NoError(t, err)
		cmp := out.(*plan.Filter).Condition.(*expr.Comparison)
		collapsed, ok := cmp.Left.(*expr.Cast)
		require.True(t, ok)
		assert.Equal(t, expr.String, collapsed.Target)
		assert.True(t, expr.Equal(a, collapsed.Child))
	})
}

func TestReduceAliases(t *testing.T) {
	a := col(1, "a", expr.Int)
	inner := expr.NewAlias(a, "inner", 10)
	outer := expr.NewAlias(inner, "outer", 20)

	rel := plan.NewLocalRelation("t", []*expr.AttributeRef{a}, nil)
	p := plan.NewProject(rel, []expr.Expr{outer})

	out, err := ReduceAliases(p)
	require.NoError(t, err)
	collapsed := out.(*plan.Project).ProjectList[0].(*expr.Alias)
	assert.Equal(t, "outer", collapsed.Name)
	assert.Equal(t, expr.ID(20), collapsed.ID)
	assert.True(t, expr.Equal(a, collapsed.Child))
}
