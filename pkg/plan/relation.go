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

// Row is a single resolved row of a LocalRelation, positional against
// its Output.
type Row []expr.Value

// LocalRelation is a resolved leaf: a materialized set of rows with a
// fixed, named, typed output. It stands in for the (out of scope)
// catalog-backed scan node — the optimizer only ever sees already
// resolved relations.
type LocalRelation struct {
	Name string
	Rows []Row
	out  []*expr.AttributeRef
}

func NewLocalRelation(name string, output []*expr.AttributeRef, rows []Row) *LocalRelation {
	return &LocalRelation{Name: name, Rows: rows, out: output}
}

func (r *LocalRelation) Children() []LogicalPlan { return nil }

func (r *LocalRelation) WithChildren(children []LogicalPlan) LogicalPlan {
	if len(children) != 0 {
		panic("LocalRelation.WithChildren: expected no children")
	}
	return r
}

func (r *LocalRelation) Output() []*expr.AttributeRef { return r.out }
func (r *LocalRelation) OutputIDSet() expr.IDSet       { return outputIDSet(r.out) }
func (r *LocalRelation) IsResolved() bool              { return len(r.out) > 0 }
func (r *LocalRelation) IsWellTyped() bool             { return true }
func (r *LocalRelation) IsStrictlyTyped() bool         { return true }
func (r *LocalRelation) Expressions() []expr.Expr      { return nil }

func (r *LocalRelation) WithExpressions(exprs []expr.Expr) LogicalPlan {
	if len(exprs) != 0 {
		panic("LocalRelation.WithExpressions: expected no expression slots")
	}
	return r
}

func (r *LocalRelation) String() string {
	names := make([]string, len(r.out))
	for i, a := range r.out {
		names[i] = a.Name
	}
	return fmt.Sprintf("LocalRelation[%s](%s)", r.Name, strings.Join(names, ", "))
}

// withOutput returns a copy with Output replaced; Rows are shared as
// they are, still positional against the original output. It has no
// caller: rules.PruneColumns builds its narrowed relation, rows
// included, with NewLocalRelation.
func (r *LocalRelation) withOutput(out []*expr.AttributeRef) *LocalRelation {
	cp := *r
	cp.out = out
	return &cp
}
