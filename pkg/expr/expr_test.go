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

package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSame_AliasWrappingIsTransparent(t *testing.T) {
	a := NewAttributeRef(1, "a", Int, false)
	aliased := NewAlias(a, "x", 100)
	assert.True(t, Same(a, aliased))
}

func TestSame_DifferentAttributeIDsDiffer(t *testing.T) {
	a := NewAttributeRef(1, "a", Int, false)
	b := NewAttributeRef(2, "a", Int, false)
	assert.False(t, Same(a, b))
}

func TestEqual_AliasWrappingIsSignificant(t *testing.T) {
	a := NewAttributeRef(1, "a", Int, false)
	aliased := NewAlias(a, "x", 100)
	assert.False(t, Equal(a, aliased))
	assert.True(t, Equal(aliased, aliased))
}

func TestEqual_SamePointerShortCircuits(t *testing.T) {
	a := NewAttributeRef(1, "a", Int, false)
	assert.True(t, Equal(a, a))
}

func TestEqualList(t *testing.T) {
	a := NewAttributeRef(1, "a", Int, false)
	b := NewAttributeRef(2, "b", Int, false)
	assert.True(t, EqualList([]Expr{a, b}, []Expr{a, b}))
	assert.False(t, EqualList([]Expr{a}, []Expr{a, b}))
}

func TestTransformDown_PreservesIdentityWhenUnchanged(t *testing.T) {
	a := NewAttributeRef(1, "a", Int, false)
	e := NewArithmetic(Add, a, NewLiteral(Int, int64(1)))
	out := TransformDown(e, func(n Expr) (Expr, bool) { return n, false })
	assert.Same(t, e, out)
}

func TestTransformDown_RewritesMatchingNodeAndRebuildsParents(t *testing.T) {
	a := NewAttributeRef(1, "a", Int, false)
	lit := NewLiteral(Int, int64(1))
	e := NewArithmetic(Add, a, lit)

	replacement := NewLiteral(Int, int64(99))
	out := TransformDown(e, func(n Expr) (Expr, bool) {
		if n == Expr(lit) {
			return replacement, true
		}
		return n, false
	})
	arith := out.(*Arithmetic)
	assert.Same(t, replacement, arith.Right)
	assert.Same(t, a, arith.Left)
}

func TestTransformUp_AppliesPostOrder(t *testing.T) {
	a := NewAttributeRef(1, "a", Int, false)
	var order []string
	e := NewNot(NewIsNull(a))
	TransformUp(e, func(n Expr) (Expr, bool) {
		order = append(order, n.String())
		return n, false
	})
	assert.Equal(t, []string{"a", "(a IS NULL)", "(NOT (a IS NULL))"}, order)
}

func TestCollect_FindsAllAttributeRefs(t *testing.T) {
	a := NewAttributeRef(1, "a", Int, false)
	b := NewAttributeRef(2, "b", Int, false)
	e := NewAnd(NewComparison(Gt, a, NewLiteral(Int, int64(1))), NewComparison(Lt, b, NewLiteral(Int, int64(10))))
	refs := Collect(e, func(n Expr) bool {
		_, ok := n.(*AttributeRef)
		return ok
	})
	assert.Len(t, refs, 2)
}

func TestReferenceIDs_CollectsAllAttributeIDs(t *testing.T) {
	a := NewAttributeRef(1, "a", Int, false)
	b := NewAttributeRef(2, "b", Int, false)
	e := NewArithmetic(Add, a, b)
	ids := e.ReferenceIDs()
	assert.True(t, ids.Contains(1))
	assert.True(t, ids.Contains(2))
	assert.Len(t, ids, 2)
}

func TestIsFoldable_LiteralsAndConstantExpressionsFold(t *testing.T) {
	lit := NewLiteral(Int, int64(1))
	assert.True(t, lit.IsFoldable())
	arith := NewArithmetic(Add, lit, NewLiteral(Int, int64(2)))
	assert.True(t, arith.IsFoldable())
}

func TestIsFoldable_AttributeRefIsNotFoldable(t *testing.T) {
	a := NewAttributeRef(1, "a", Int, false)
	assert.False(t, a.IsFoldable())
	arith := NewArithmetic(Add, a, NewLiteral(Int, int64(2)))
	assert.False(t, arith.IsFoldable())
}
