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

func TestCNFConversion(t *testing.T) {
	a, b, c := col(1, "a", expr.Bool), col(2, "b", expr.Bool), col(3, "c", expr.Bool)
	rel := plan.NewLocalRelation("t", []*expr.AttributeRef{a, b, c}, nil)
	cond := expr.NewOr(a, expr.NewAnd(b, c))
	p := plan.NewFilter(rel, cond)

	out, err := CNFConversion(p)
	require.NoError(t, err)
	want := expr.NewAnd(expr.NewOr(a, b), expr.NewOr(a, c))
	assert.True(t, expr.Equal(want, out.(*plan.Filter).Condition))
}

func TestEliminateCommonPredicates(t *testing.T) {
	a := col(1, "a", expr.Bool)

	t.Run("and-equal", func(t *testing.T) {
		out, err := EliminateCommonPredicates(filterOf(expr.NewAnd(a, a)))
		require.NoError(t, err)
		assert.True(t, expr.Equal(a, out.(*plan.Filter).Condition))
	})

	t.Run("if-equal-branches-becomes-coalesce", func(t *testing.T) {
		y := expr.NewLiteral(expr.Int, int64(1))
		in := expr.NewIf(a, y, expr.NewLiteral(expr.Int, int64(1)))
		out, err := EliminateCommonPredicates(filterOf(expr.NewComparison(expr.Eq, in, in)))
		require.NoError(t, err)
		cmp := out.(*plan.Filter).Condition.(*expr.Comparison)
		coalesce, ok := cmp.Left.(*expr.Coalesce)
		require.True(t, ok)
		assert.Len(t, coalesce.Args, 2)
	})
}

func TestMergeFilters(t *testing.T) {
	a := col(1, "a", expr.Int)
	rel := plan.NewLocalRelation("t", []*expr.AttributeRef{a}, nil)
	inner := expr.NewComparison(expr.Gt, a, expr.NewLiteral(expr.Int, int64(1)))
	outer := expr.NewComparison(expr.Lt, a, expr.NewLiteral(expr.Int, int64(10)))
	p := plan.NewFilter(plan.NewFilter(rel, inner), outer)

	out, err := MergeFilters(p)
	require.NoError(t, err)
	merged := out.(*plan.Filter)
	assert.Same(t, rel, merged.Child)
	assert.True(t, expr.Equal(expr.NewAnd(inner, outer), merged.Condition))
}

func TestEliminateSubqueries(t *testing.T) {
	a := col(1, "a", expr.Int)
	rel := plan.NewLocalRelation("t", []*expr.AttributeRef{a}, nil)
	sq := plan.NewSubquery(rel, "s")
	qualified := expr.NewAttributeRef(1, "a", expr.Int, false)
	qualified.Qualifier = "s"
	p := plan.NewFilter(sq, expr.NewComparison(expr.Gt, qualified, expr.NewLiteral(expr.Int, int64(1))))

	out, err := EliminateSubqueries(p)
	require.NoError(t, err)
	f := out.(*plan.Filter)
	_, isSubquery := f.Child.(*plan.Subquery)
	assert.False(t, isSubquery)
	cmp := f.Condition.(*expr.Comparison)
	ref := cmp.Left.(*expr.AttributeRef)
	assert.Equal(t, "", ref.Qualifier)
}
