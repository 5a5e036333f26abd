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
	"strings"

	"github.com/strataql/strata/pkg/expr"
)

// Project evaluates ProjectList against Child's rows. Every element of
// ProjectList is either a bare *expr.AttributeRef (pass-through) or a
// *expr.Alias (rebinding to a new name/ID).
type Project struct {
	Child       LogicalPlan
	ProjectList []expr.Expr
}

func NewProject(child LogicalPlan, list []expr.Expr) *Project {
	return &Project{Child: child, ProjectList: list}
}

func (p *Project) Children() []LogicalPlan { return []LogicalPlan{p.Child} }

func (p *Project) WithChildren(children []LogicalPlan) LogicalPlan {
	if len(children) != 1 {
		panic("Project.WithChildren: expected exactly one child")
	}
	if children[0] == p.Child {
		return p
	}
	return &Project{Child: children[0], ProjectList: p.ProjectList}
}

// Output derives one AttributeRef per ProjectList entry: an Alias/
// GeneratedAlias contributes its own ID/name/type; a bare
// AttributeRef/GeneratedAttribute passes itself through unchanged.
func (p *Project) Output() []*expr.AttributeRef {
	out := make([]*expr.AttributeRef, len(p.ProjectList))
	for i, e := range p.ProjectList {
		out[i] = projectListEntryOutput(e)
	}
	return out
}

func projectListEntryOutput(e expr.Expr) *expr.AttributeRef {
	switch v := e.(type) {
	case *expr.AttributeRef:
		return v
	case *expr.GeneratedAttribute:
		return &v.AttributeRef
	case expr.Typed:
		return expr.NewAttributeRef(v.ExprID(), aliasName(v), v.DataType(), v.IsNullable())
	default:
		// Unresolved: no stable ID/name yet.
		return expr.NewAttributeRef(0, "?column?", e.DataType(), e.IsNullable())
	}
}

func aliasName(t expr.Typed) string {
	switch v := t.(type) {
	case *expr.Alias:
		return v.Name
	case *expr.GeneratedAlias:
		return v.Name
	default:
		return "?column?"
	}
}

func (p *Project) OutputIDSet() expr.IDSet { return outputIDSet(p.Output()) }
func (p *Project) IsResolved() bool        { return p.Child.IsResolved() && exprListResolved(p.ProjectList) }
func (p *Project) IsWellTyped() bool       { return p.Child.IsWellTyped() && exprListResolved(p.ProjectList) }
func (p *Project) IsStrictlyTyped() bool {
	return p.IsWellTyped() && p.Child.IsStrictlyTyped() && exprListStrictlyTyped(p.ProjectList)
}

func (p *Project) Expressions() []expr.Expr { return p.ProjectList }

func (p *Project) WithExpressions(exprs []expr.Expr) LogicalPlan {
	if len(exprs) != len(p.ProjectList) {
		panic("Project.WithExpressions: arity mismatch")
	}
	return &Project{Child: p.Child, ProjectList: exprs}
}

func (p *Project) String() string {
	parts := make([]string, len(p.ProjectList))
	for i, e := range p.ProjectList {
		parts[i] = e.String()
	}
	return fmt.Sprintf("Project[%s]", strings.Join(parts, ", "))
}
