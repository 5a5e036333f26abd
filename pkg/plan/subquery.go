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

// Subquery wraps Child under Alias, qualifying every attribute Child
// exposes (e.g. "s.a"). EliminateSubqueries removes this node and
// clears the qualifier from every AttributeRef in the remaining tree.
type Subquery struct {
	Child LogicalPlan
	Alias string
}

func NewSubquery(child LogicalPlan, alias string) *Subquery {
	return &Subquery{Child: child, Alias: alias}
}

func (s *Subquery) Children() []LogicalPlan { return []LogicalPlan{s.Child} }

func (s *Subquery) WithChildren(children []LogicalPlan) LogicalPlan {
	if len(children) != 1 {
		panic("Subquery.WithChildren: expected exactly one child")
	}
	if children[0] == s.Child {
		return s
	}
	return &Subquery{Child: children[0], Alias: s.Alias}
}

// Output returns Child's attributes with Qualifier set to Alias.
func (s *Subquery) Output() []*expr.AttributeRef {
	childOut := s.Child.Output()
	out := make([]*expr.AttributeRef, len(childOut))
	for i, a := range childOut {
		cp := *a
		cp.Qualifier = s.Alias
		out[i] = &cp
	}
	return out
}

func (s *Subquery) OutputIDSet() expr.IDSet { return s.Child.OutputIDSet() }
func (s *Subquery) IsResolved() bool        { return s.Child.IsResolved() }
func (s *Subquery) IsWellTyped() bool       { return s.Child.IsWellTyped() }
func (s *Subquery) IsStrictlyTyped() bool   { return s.Child.IsStrictlyTyped() }
func (s *Subquery) Expressions() []expr.Expr { return nil }

func (s *Subquery) WithExpressions(exprs []expr.Expr) LogicalPlan {
	if len(exprs) != 0 {
		panic("Subquery.WithExpressions: expected no expression slots")
	}
	return s
}

func (s *Subquery) String() string { return fmt.Sprintf("Subquery[%s]", s.Alias) }
