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

// Filter retains rows of Child where Condition evaluates true.
type Filter struct {
	Child     LogicalPlan
	Condition expr.Expr
}

func NewFilter(child LogicalPlan, cond expr.Expr) *Filter {
	return &Filter{Child: child, Condition: cond}
}

func (f *Filter) Children() []LogicalPlan { return []LogicalPlan{f.Child} }

func (f *Filter) WithChildren(children []LogicalPlan) LogicalPlan {
	if len(children) != 1 {
		panic("Filter.WithChildren: expected exactly one child")
	}
	if children[0] == f.Child {
		return f
	}
	return &Filter{Child: children[0], Condition: f.Condition}
}

func (f *Filter) Output() []*expr.AttributeRef { return f.Child.Output() }
func (f *Filter) OutputIDSet() expr.IDSet       { return f.Child.OutputIDSet() }
func (f *Filter) IsResolved() bool              { return f.Child.IsResolved() && f.Condition.IsResolved() }
func (f *Filter) IsWellTyped() bool {
	return f.Child.IsWellTyped() && f.Condition.IsResolved() && f.Condition.DataType() == expr.Bool
}

func (f *Filter) IsStrictlyTyped() bool {
	return f.IsWellTyped() && f.Child.IsStrictlyTyped() && !hasRedundantCast(f.Condition)
}

func (f *Filter) Expressions() []expr.Expr { return []expr.Expr{f.Condition} }

func (f *Filter) WithExpressions(exprs []expr.Expr) LogicalPlan {
	if len(exprs) != 1 {
		panic("Filter.WithExpressions: expected exactly one expression")
	}
	return &Filter{Child: f.Child, Condition: exprs[0]}
}

func (f *Filter) String() string { return fmt.Sprintf("Filter[%s]", f.Condition.String()) }
