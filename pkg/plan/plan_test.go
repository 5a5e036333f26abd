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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strataql/strata/pkg/expr"
)

func col(id expr.ID, name string, t expr.DataType) *expr.AttributeRef {
	return expr.NewAttributeRef(id, name, t, false)
}

func TestEqual_SamePointerShortCircuits(t *testing.T) {
	rel := NewLocalRelation("t", []*expr.AttributeRef{col(1, "a", expr.Int)}, nil)
	assert.True(t, Equal(rel, rel))
}

func TestEqual_StructurallyEqualDistinctInstances(t *testing.T) {
	a1 := col(1, "a", expr.Int)
	a2 := col(1, "a", expr.Int)
	r1 := NewLocalRelation("t", []*expr.AttributeRef{a1}, nil)
	r2 := NewLocalRelation("t", []*expr.AttributeRef{a2}, nil)
	assert.True(t, Equal(r1, r2))
}

func TestEqual_DifferentJoinTypesDiffer(t *testing.T) {
	left := NewLocalRelation("l", []*expr.AttributeRef{col(1, "a", expr.Int)}, nil)
	right := NewLocalRelation("r", []*expr.AttributeRef{col(2, "b", expr.Int)}, nil)
	j1 := NewJoin(left, right, Inner, nil)
	j2 := NewJoin(left, right, LeftOuter, nil)
	assert.False(t, Equal(j1, j2))
}

func TestTransformDown_PreservesIdentityWhenUnchanged(t *testing.T) {
	rel := NewLocalRelation("t", []*expr.AttributeRef{col(1, "a", expr.Int)}, nil)
	p := NewProject(rel, []expr.Expr{col(1, "a", expr.Int)})
	out := TransformDown(p, func(n LogicalPlan) (LogicalPlan, bool) { return n, false })
	assert.Same(t, p, out)
}

func TestTransformDown_RewritesAndRebuildsParent(t *testing.T) {
	a := col(1, "a", expr.Int)
	rel := NewLocalRelation("t", []*expr.AttributeRef{a}, nil)
	filtered := NewFilter(rel, expr.NewComparison(expr.Gt, a, expr.NewLiteral(expr.Int, int64(1))))
	replacement := NewLocalRelation("other", []*expr.AttributeRef{a}, nil)

	out := TransformDown(filtered, func(n LogicalPlan) (LogicalPlan, bool) {
		if n == LogicalPlan(rel) {
			return replacement, true
		}
		return n, false
	})
	f := out.(*Filter)
	assert.Same(t, replacement, f.Child)
}

func TestTransformAllExpressions_RewritesEveryExpressionSlot(t *testing.T) {
	a := col(1, "a", expr.Int)
	rel := NewLocalRelation("t", []*expr.AttributeRef{a}, nil)
	p := NewFilter(NewProject(rel, []expr.Expr{a}), expr.NewComparison(expr.Gt, a, expr.NewLiteral(expr.Int, int64(1))))

	calls := 0
	out := TransformAllExpressions(p, func(e expr.Expr) (expr.Expr, bool) {
		calls++
		return e, false
	})
	assert.True(t, Equal(p, out))
	assert.Greater(t, calls, 0)
}

func TestCollectFromAllExpressions_FindsNestedAttributeRefs(t *testing.T) {
	a := col(1, "a", expr.Int)
	b := col(2, "b", expr.Int)
	rel := NewLocalRelation("t", []*expr.AttributeRef{a, b}, nil)
	p := NewFilter(NewProject(rel, []expr.Expr{a, b}), expr.NewComparison(expr.Gt, a, expr.NewLiteral(expr.Int, int64(1))))

	refs := CollectFromAllExpressions(p, func(e expr.Expr) bool {
		_, ok := e.(*expr.AttributeRef)
		return ok
	})
	assert.Len(t, refs, 3)
}

func TestPrettyTree_IndentsByDepth(t *testing.T) {
	a := col(1, "a", expr.Int)
	rel := NewLocalRelation("t", []*expr.AttributeRef{a}, nil)
	p := NewFilter(rel, expr.NewComparison(expr.Gt, a, expr.NewLiteral(expr.Int, int64(1))))

	out := PrettyTree(p)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.False(t, strings.HasPrefix(lines[0], " "))
	assert.True(t, strings.HasPrefix(lines[1], "  "))
}
