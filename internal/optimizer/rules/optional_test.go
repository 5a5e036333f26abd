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

func TestFoldConstantFilters_TrueConditionDropsFilter(t *testing.T) {
	a := col(1, "a", expr.Int)
	rel := plan.NewLocalRelation("t", []*expr.AttributeRef{a}, nil)
	p := plan.NewFilter(rel, expr.NewLiteral(expr.Bool, true))

	out, err := FoldConstantFilters(p)
	require.NoError(t, err)
	assert.Same(t, rel, out)
}

func TestFoldConstantFilters_FalseConditionEmptiesRelation(t *testing.T) {
	a := col(1, "a", expr.Int)
	rel := plan.NewLocalRelation("t", []*expr.AttributeRef{a}, nil)
	p := plan.NewFilter(rel, expr.NewLiteral(expr.Bool, false))

	out, err := FoldConstantFilters(p)
	require.NoError(t, err)
	empty, ok := out.(*plan.LocalRelation)
	require.True(t, ok)
	assert.Equal(t, p.Output(), empty.Output())
}

func TestFoldConstantFilters_NonConstantConditionUntouched(t *testing.T) {
	a := col(1, "a", expr.Int)
	rel := plan.NewLocalRelation("t", []*expr.AttributeRef{a}, nil)
	p := plan.NewFilter(rel, expr.NewComparison(expr.Gt, a, expr.NewLiteral(expr.Int, int64(1))))

	out, err := FoldConstantFilters(p)
	require.NoError(t, err)
	assert.Same(t, p, out)
}

func TestPruneColumns_DropsUnreferencedRelationColumns(t *testing.T) {
	a := col(1, "a", expr.Int)
	b := col(2, "b", expr.Int)
	rel := plan.NewLocalRelation("t", []*expr.AttributeRef{a, b}, nil)
	p := plan.NewProject(rel, []expr.Expr{a})

	out, err := PruneColumns(p)
	require.NoError(t, err)
	proj := out.(*plan.Project)
	narrowed := proj.Child.(*plan.LocalRelation)
	assert.Len(t, narrowed.Output(), 1)
	assert.Equal(t, expr.ID(1), narrowed.Output()[0].ID)
}

func TestPruneColumns_NoUnusedColumnsIsUnchanged(t *testing.T) {
	a := col(1, "a", expr.Int)
	rel := plan.NewLocalRelation("t", []*expr.AttributeRef{a}, nil)
	p := plan.NewProject(rel, []expr.Expr{a})

	out, err := PruneColumns(p)
	require.NoError(t, err)
	assert.Same(t, p, out)
}
