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

package exprutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strataql/strata/pkg/expr"
)

func ref(id expr.ID, name string) *expr.AttributeRef {
	return expr.NewAttributeRef(id, name, expr.Bool, false)
}

func TestSplitJoinConjunctionRoundTrip(t *testing.T) {
	a, b, c := ref(1, "a"), ref(2, "b"), ref(3, "c")
	e := expr.NewAnd(expr.NewAnd(a, b), c)
	parts := SplitConjunction(e)
	assert.Len(t, parts, 3)
	assert.True(t, expr.Equal(a, parts[0]))
	assert.True(t, expr.Equal(b, parts[1]))
	assert.True(t, expr.Equal(c, parts[2]))

	rejoined := JoinConjunction(parts)
	assert.True(t, expr.Equal(expr.NewAnd(expr.NewAnd(a, b), c), rejoined))
}

func TestSplitConjunctionNonAndIsSingleton(t *testing.T) {
	a := ref(1, "a")
	assert.Equal(t, []expr.Expr{a}, SplitConjunction(a))
}

func TestToCNF_DeMorganAndDistribution(t *testing.T) {
	a, b, c := ref(1, "a"), ref(2, "b"), ref(3, "c")

	// not(a and b) -> (not a) or (not b)
	notAnd := expr.NewNot(expr.NewAnd(a, b))
	want := expr.NewOr(expr.NewNot(a), expr.NewNot(b))
	assert.True(t, expr.Equal(want, ToCNF(notAnd)))

	// a or (b and c) -> (a or b) and (a or c)
	orOfAnd := expr.NewOr(a, expr.NewAnd(b, c))
	wantDist := expr.NewAnd(expr.NewOr(a, b), expr.NewOr(a, c))
	assert.True(t, expr.Equal(wantDist, ToCNF(orOfAnd)))
}

func TestToCNF_DoubleNegationCollapses(t *testing.T) {
	a := ref(1, "a")
	notNot := expr.NewNot(expr.NewNot(a))
	assert.True(t, expr.Equal(a, ToCNF(notNot)))
}

func TestInlineAliases(t *testing.T) {
	a := ref(1, "a")
	alias := expr.NewAlias(a, "x", 100)
	projectList := []expr.Expr{alias}

	ref100 := expr.NewAttributeRef(100, "x", expr.Bool, false)
	out := InlineAliases(projectList, ref100)
	assert.True(t, expr.Equal(a, out))
}

func TestInlineAliases_LeavesUnboundReferences(t *testing.T) {
	a := ref(1, "a")
	b := ref(2, "b")
	alias := expr.NewAlias(a, "x", 100)
	out := InlineAliases([]expr.Expr{alias}, b)
	assert.True(t, expr.Equal(b, out))
}
