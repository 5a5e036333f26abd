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

package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataql/strata/pkg/expr"
	"github.com/strataql/strata/pkg/plan"
)

func TestLoadPlan_LocalRelation(t *testing.T) {
	src := `{
		"type": "LocalRelation",
		"name": "t",
		"output": [
			{"id": 1, "name": "a", "dataType": "INT", "nullable": false}
		]
	}`
	p, err := LoadPlan([]byte(src))
	require.NoError(t, err)
	rel, ok := p.(*plan.LocalRelation)
	require.True(t, ok)
	assert.Equal(t, "t", rel.Name)
	require.Len(t, rel.Output(), 1)
	assert.Equal(t, expr.ID(1), rel.Output()[0].ID)
	assert.Equal(t, expr.Int, rel.Output()[0].Type)
}

func TestLoadPlan_FilterOverComparison(t *testing.T) {
	src := `{
		"type": "Filter",
		"child": {
			"type": "LocalRelation",
			"name": "t",
			"output": [{"id": 1, "name": "a", "dataType": "INT", "nullable": false}]
		},
		"condition": {
			"type": "Comparison",
			"op": ">",
			"left": {"type": "AttributeRef", "id": 1, "name": "a", "dataType": "INT", "nullable": false},
			"right": {"type": "Literal", "dataType": "INT", "value": 1}
		}
	}`
	p, err := LoadPlan([]byte(src))
	require.NoError(t, err)
	f, ok := p.(*plan.Filter)
	require.True(t, ok)
	cmp, ok := f.Condition.(*expr.Comparison)
	require.True(t, ok)
	assert.Equal(t, expr.Gt, cmp.Op)
	lit := cmp.Right.(*expr.Literal)
	assert.Equal(t, int64(1), lit.Val)
}

func TestLoadPlan_JoinWithTypedCondition(t *testing.T) {
	src := `{
		"type": "Join",
		"joinType": "Inner",
		"left": {
			"type": "LocalRelation", "name": "l",
			"output": [{"id": 1, "name": "a", "dataType": "INT", "nullable": false}]
		},
		"right": {
			"type": "LocalRelation", "name": "r",
			"output": [{"id": 2, "name": "b", "dataType": "INT", "nullable": false}]
		},
		"condition": {
			"type": "Comparison", "op": "=",
			"left": {"type": "AttributeRef", "id": 1, "name": "a", "dataType": "INT", "nullable": false},
			"right": {"type": "AttributeRef", "id": 2, "name": "b", "dataType": "INT", "nullable": false}
		}
	}`
	p, err := LoadPlan([]byte(src))
	require.NoError(t, err)
	j, ok := p.(*plan.Join)
	require.True(t, ok)
	assert.Equal(t, plan.Inner, j.Type)
	require.NotNil(t, j.Condition)
}

func TestLoadPlan_UnknownPlanTypeErrors(t *testing.T) {
	_, err := LoadPlan([]byte(`{"type": "Bogus"}`))
	assert.Error(t, err)
}

func TestLoadPlan_UnknownDataTypeErrors(t *testing.T) {
	src := `{"type": "LocalRelation", "name": "t", "output": [{"id": 1, "name": "a", "dataType": "WEIRD"}]}`
	_, err := LoadPlan([]byte(src))
	assert.Error(t, err)
}

func TestLoadPlan_ProjectWithAlias(t *testing.T) {
	src := `{
		"type": "Project",
		"child": {
			"type": "LocalRelation", "name": "t",
			"output": [{"id": 1, "name": "a", "dataType": "INT", "nullable": false}]
		},
		"projectList": [
			{"type": "Alias", "id": 100, "name": "x", "child": {"type": "AttributeRef", "id": 1, "name": "a", "dataType": "INT", "nullable": false}}
		]
	}`
	p, err := LoadPlan([]byte(src))
	require.NoError(t, err)
	proj := p.(*plan.Project)
	alias := proj.ProjectList[0].(*expr.Alias)
	assert.Equal(t, "x", alias.Name)
	assert.Equal(t, expr.ID(100), alias.ID)
}
