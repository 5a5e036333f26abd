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
	"fmt"

	"github.com/strataql/strata/pkg/expr"
)

// JoinType is the closed set of supported join kinds.
type JoinType int8

const (
	Inner JoinType = iota
	LeftOuter
	RightOuter
	FullOuter
)

func (t JoinType) String() string {
	switch t {
	case Inner:
		return "Inner"
	case LeftOuter:
		return "LeftOuter"
	case RightOuter:
		return "RightOuter"
	case FullOuter:
		return "FullOuter"
	default:
		return "?"
	}
}

// Join combines Left and Right rows under Condition (nil means a cross
// join). PushFiltersThroughJoins only transforms Inner joins; outer
// joins keep their null-producing semantics intact.
type Join struct {
	Left, Right LogicalPlan
	Type        JoinType
	Condition   expr.Expr // optional, may be nil
}

func NewJoin(left, right LogicalPlan, t JoinType, cond expr.Expr) *Join {
	return &Join{Left: left, Right: right, Type: t, Condition: cond}
}

func (j *Join) Children() []LogicalPlan { return []LogicalPlan{j.Left, j.Right} }

func (j *Join) WithChildren(children []LogicalPlan) LogicalPlan {
	if len(children) != 2 {
		panic("Join.WithChildren: expected exactly two children")
	}
	if children[0] == j.Left && children[1] == j.Right {
		return j
	}
	return &Join{Left: children[0], Right: children[1], Type: j.Type, Condition: j.Condition}
}

func (j *Join) Output() []*expr.AttributeRef {
	out := make([]*expr.AttributeRef, 0, len(j.Left.Output())+len(j.Right.Output()))
	out = append(out, j.Left.Output()...)
	out = append(out, j.Right.Output()...)
	return out
}

func (j *Join) OutputIDSet() expr.IDSet { return j.Left.OutputIDSet().Union(j.Right.OutputIDSet()) }

func (j *Join) IsResolved() bool {
	if !j.Left.IsResolved() || !j.Right.IsResolved() {
		return false
	}
	return j.Condition == nil || j.Condition.IsResolved()
}

func (j *Join) IsWellTyped() bool {
	if !j.Left.IsWellTyped() || !j.Right.IsWellTyped() {
		return false
	}
	return j.Condition == nil || (j.Condition.IsResolved() && j.Condition.DataType() == expr.Bool)
}

func (j *Join) IsStrictlyTyped() bool {
	if !j.IsWellTyped() || !j.Left.IsStrictlyTyped() || !j.Right.IsStrictlyTyped() {
		return false
	}
	return j.Condition == nil || !hasRedundantCast(j.Condition)
}

func (j *Join) Expressions() []expr.Expr {
	if j.Condition == nil {
		return nil
	}
	return []expr.Expr{j.Condition}
}

func (j *Join) WithExpressions(exprs []expr.Expr) LogicalPlan {
	switch len(exprs) {
	case 0:
		return &Join{Left: j.Left, Right: j.Right, Type: j.Type, Condition: nil}
	case 1:
		return &Join{Left: j.Left, Right: j.Right, Type: j.Type, Condition: exprs[0]}
	default:
		panic("Join.WithExpressions: arity mismatch")
	}
}

func (j *Join) String() string {
	if j.Condition == nil {
		return fmt.Sprintf("Join[%s]", j.Type.String())
	}
	return fmt.Sprintf("Join[%s ON %s]", j.Type.String(), j.Condition.String())
}
