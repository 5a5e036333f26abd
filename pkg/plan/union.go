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

import "github.com/strataql/strata/pkg/expr"

// Union concatenates Left and Right rows. Both sides must already agree
// on output arity/types (enforced by the out-of-scope analyzer); Union
// reuses Left's attribute IDs/names as its own Output.
type Union struct {
	Left, Right LogicalPlan
}

func NewUnion(left, right LogicalPlan) *Union {
	return &Union{Left: left, Right: right}
}

func (u *Union) Children() []LogicalPlan { return []LogicalPlan{u.Left, u.Right} }

func (u *Union) WithChildren(children []LogicalPlan) LogicalPlan {
	if len(children) != 2 {
		panic("Union.WithChildren: expected exactly two children")
	}
	if children[0] == u.Left && children[1] == u.Right {
		return u
	}
	return &Union{Left: children[0], Right: children[1]}
}

func (u *Union) Output() []*expr.AttributeRef { return u.Left.Output() }
func (u *Union) OutputIDSet() expr.IDSet       { return u.Left.OutputIDSet() }
func (u *Union) IsResolved() bool              { return u.Left.IsResolved() && u.Right.IsResolved() }
func (u *Union) IsWellTyped() bool             { return u.Left.IsWellTyped() && u.Right.IsWellTyped() }
func (u *Union) IsStrictlyTyped() bool {
	return u.Left.IsStrictlyTyped() && u.Right.IsStrictlyTyped()
}

func (u *Union) Expressions() []expr.Expr { return nil }

func (u *Union) WithExpressions(exprs []expr.Expr) LogicalPlan {
	if len(exprs) != 0 {
		panic("Union.WithExpressions: expected no expression slots")
	}
	return u
}

func (u *Union) String() string { return "Union" }
