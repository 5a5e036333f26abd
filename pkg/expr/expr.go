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

package expr

import "fmt"

// Expr is the tree-node contract every expression variant satisfies.
// It mirrors the LogicalPlan contract in pkg/plan: same shape, different
// family, per the tree-algebra design (§4.1 of the optimizer spec).
type Expr interface {
	// Children returns the ordered child expressions.
	Children() []Expr
	// WithChildren returns a structurally identical node with the
	// children replaced. The new slice must have the same length as
	// Children(); callers that pass the original slice back get the
	// same node instance (structure sharing).
	WithChildren(children []Expr) Expr

	DataType() DataType
	IsNullable() bool
	// IsFoldable reports whether the expression has no free attributes
	// and no side effects, so it can be replaced by a Literal.
	IsFoldable() bool
	// IsPure reports whether evaluating the expression twice with the
	// same inputs always yields the same value and has no side effect.
	IsPure() bool
	IsResolved() bool

	// ReferenceIDs returns the set of AttributeRef IDs used transitively.
	ReferenceIDs() IDSet

	String() string
}

// Typed is implemented by expressions that carry an ExpressionID:
// Alias, AttributeRef, GeneratedAlias, GeneratedAttribute.
type Typed interface {
	Expr
	ExprID() ID
}

// Evaluator is implemented by foldable expressions; Eval returns the
// expression's value under the empty environment. FoldConstants calls
// Eval only when IsFoldable() holds, so Eval must be total there.
type Evaluator interface {
	Expr
	Eval() (Value, error)
}

// Value is a resolved scalar value, the runtime counterpart of a
// Literal. nil represents SQL NULL.
type Value struct {
	Type DataType
	Val  interface{}
}

func (v Value) String() string {
	if v.Val == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v.Val)
}

func boolVal(b bool) Value { return Value{Type: Bool, Val: b} }

func isTrue(v Value) bool {
	b, ok := v.Val.(bool)
	return ok && b
}

func isFalse(v Value) bool {
	b, ok := v.Val.(bool)
	return ok && !b
}

func isNullValue(v Value) bool {
	return v.Val == nil
}

// childrenReferenceIDs is a helper most variants use to compute
// ReferenceIDs from their children.
func childrenReferenceIDs(children []Expr) IDSet {
	out := IDSet{}
	for _, c := range children {
		for id := range c.ReferenceIDs() {
			out[id] = struct{}{}
		}
	}
	return out
}

func childrenResolved(children []Expr) bool {
	for _, c := range children {
		if !c.IsResolved() {
			return false
		}
	}
	return true
}

func childrenPure(children []Expr) bool {
	for _, c := range children {
		if !c.IsPure() {
			return false
		}
	}
	return true
}

func childrenFoldable(children []Expr) bool {
	for _, c := range children {
		if !c.IsFoldable() {
			return false
		}
	}
	return true
}

func childrenNullable(children []Expr) bool {
	for _, c := range children {
		if c.IsNullable() {
			return true
		}
	}
	return false
}
