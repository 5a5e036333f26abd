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

// Package plan is the relational plan algebra: LocalRelation, Project,
// Filter, Join, Limit, Union and Subquery, each carrying child plans
// and attached expressions. It mirrors the shape of pkg/expr (same
// tree-node contract, different family), per §4.1 of the optimizer
// spec's tree algebra.
package plan

import "github.com/strataql/strata/pkg/expr"

// LogicalPlan is the tree-node contract every plan variant satisfies.
type LogicalPlan interface {
	Children() []LogicalPlan
	// WithChildren returns a structurally identical node with the
	// children replaced, same arity, other attributes intact.
	WithChildren(children []LogicalPlan) LogicalPlan

	// Output is the ordered sequence of attributes this plan produces.
	Output() []*expr.AttributeRef
	// OutputIDSet is the set of Output's IDs, computed on demand.
	OutputIDSet() expr.IDSet

	IsResolved() bool
	IsWellTyped() bool
	IsStrictlyTyped() bool

	// Expressions returns the expression slots this node holds
	// directly (not recursively) in a stable order: e.g. Filter
	// returns [condition], Project returns projectList. Used by
	// TransformAllExpressions/CollectFromAllExpressions.
	Expressions() []expr.Expr
	// WithExpressions returns a copy with Expressions() replaced,
	// same arity and order as Expressions().
	WithExpressions(exprs []expr.Expr) LogicalPlan

	String() string
}

func outputIDSet(output []*expr.AttributeRef) expr.IDSet {
	s := make(expr.IDSet, len(output))
	for _, a := range output {
		s[a.ID] = struct{}{}
	}
	return s
}

func childrenResolvedP(children []LogicalPlan) bool {
	for _, c := range children {
		if !c.IsResolved() {
			return false
		}
	}
	return true
}

func childrenWellTypedP(children []LogicalPlan) bool {
	for _, c := range children {
		if !c.IsWellTyped() {
			return false
		}
	}
	return true
}

func childrenStrictlyTypedP(children []LogicalPlan) bool {
	for _, c := range children {
		if !c.IsStrictlyTyped() {
			return false
		}
	}
	return true
}

func exprListResolved(list []expr.Expr) bool {
	for _, e := range list {
		if !e.IsResolved() {
			return false
		}
	}
	return true
}

// hasRedundantCast reports whether e, or any subexpression, is a Cast
// whose child already has the target type — the marker of a
// not-strictly-typed expression (§3 LogicalPlan invariants).
func hasRedundantCast(e expr.Expr) bool {
	found := false
	expr.Collect(e, func(n expr.Expr) bool {
		if c, ok := n.(*expr.Cast); ok && c.Child.DataType() == c.Target {
			found = true
		}
		return false
	})
	return found
}

func exprListStrictlyTyped(list []expr.Expr) bool {
	for _, e := range list {
		if hasRedundantCast(e) {
			return false
		}
	}
	return true
}
