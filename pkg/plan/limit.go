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

// Limit caps Child to its first N rows. N is an Expr (not a bare int)
// so that ReduceLimits can collapse nested limits lazily via If before
// FoldConstants reduces it to a Literal.
type Limit struct {
	Child LogicalPlan
	N     expr.Expr
}

func NewLimit(child LogicalPlan, n expr.Expr) *Limit {
	return &Limit{Child: child, N: n}
}

func (l *Limit) Children() []LogicalPlan { return []LogicalPlan{l.Child} }

func (l *Limit) WithChildren(children []LogicalPlan) LogicalPlan {
	if len(children) != 1 {
		panic("Limit.WithChildren: expected exactly one child")
	}
	if children[0] == l.Child {
		return l
	}
	return &Limit{Child: children[0], N: l.N}
}

func (l *Limit) Output() []*expr.AttributeRef { return l.Child.Output() }
func (l *Limit) OutputIDSet() expr.IDSet       { return l.Child.OutputIDSet() }
func (l *Limit) IsResolved() bool              { return l.Child.IsResolved() && l.N.IsResolved() }
func (l *Limit) IsWellTyped() bool {
	return l.Child.IsWellTyped() && l.N.IsResolved() && l.N.DataType() == expr.Int
}

func (l *Limit) IsStrictlyTyped() bool {
	return l.IsWellTyped() && l.Child.IsStrictlyTyped() && !hasRedundantCast(l.N)
}

func (l *Limit) Expressions() []expr.Expr { return []expr.Expr{l.N} }

func (l *Limit) WithExpressions(exprs []expr.Expr) LogicalPlan {
	if len(exprs) != 1 {
		panic("Limit.WithExpressions: expected exactly one expression")
	}
	return &Limit{Child: l.Child, N: exprs[0]}
}

func (l *Limit) String() string { return fmt.Sprintf("Limit[%s]", l.N.String()) }
