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

// And is a boolean conjunction.
type And struct {
	Left, Right Expr
}

func NewAnd(l, r Expr) *And { return &And{Left: l, Right: r} }

func (a *And) Children() []Expr { return []Expr{a.Left, a.Right} }

func (a *And) WithChildren(children []Expr) Expr {
	if len(children) != 2 {
		panic("And.WithChildren: expected exactly two children")
	}
	if children[0] == a.Left && children[1] == a.Right {
		return a
	}
	return &And{Left: children[0], Right: children[1]}
}

func (a *And) DataType() DataType  { return Bool }
func (a *And) IsNullable() bool    { return childrenNullable(a.Children()) }
func (a *And) IsFoldable() bool    { return childrenFoldable(a.Children()) }
func (a *And) IsPure() bool        { return childrenPure(a.Children()) }
func (a *And) IsResolved() bool    { return childrenResolved(a.Children()) }
func (a *And) ReferenceIDs() IDSet { return childrenReferenceIDs(a.Children()) }
func (a *And) String() string      { return fmt.Sprintf("(%s AND %s)", a.Left.String(), a.Right.String()) }

func (a *And) Eval() (Value, error) {
	lv, rv, err := evalPair(a.Left, a.Right)
	if err != nil {
		return Value{}, err
	}
	if isFalse(lv) || isFalse(rv) {
		return boolVal(false), nil
	}
	if isNullValue(lv) || isNullValue(rv) {
		return Value{Type: Bool, Val: nil}, nil
	}
	return boolVal(isTrue(lv) && isTrue(rv)), nil
}

// Or is a boolean disjunction.
type Or struct {
	Left, Right Expr
}

func NewOr(l, r Expr) *Or { return &Or{Left: l, Right: r} }

func (o *Or) Children() []Expr { return []Expr{o.Left, o.Right} }

func (o *Or) WithChildren(children []Expr) Expr {
	if len(children) != 2 {
		panic("Or.WithChildren: expected exactly two children")
	}
	if children[0] == o.Left && children[1] == o.Right {
		return o
	}
	return &Or{Left: children[0], Right: children[1]}
}

func (o *Or) DataType() DataType  { return Bool }
func (o *Or) IsNullable() bool    { return childrenNullable(o.Children()) }
func (o *Or) IsFoldable() bool    { return childrenFoldable(o.Children()) }
func (o *Or) IsPure() bool        { return childrenPure(o.Children()) }
func (o *Or) IsResolved() bool    { return childrenResolved(o.Children()) }
func (o *Or) ReferenceIDs() IDSet { return childrenReferenceIDs(o.Children()) }
func (o *Or) String() string      { return fmt.Sprintf("(%s OR %s)", o.Left.String(), o.Right.String()) }

func (o *Or) Eval() (Value, error) {
	lv, rv, err := evalPair(o.Left, o.Right)
	if err != nil {
		return Value{}, err
	}
	if isTrue(lv) || isTrue(rv) {
		return boolVal(true), nil
	}
	if isNullValue(lv) || isNullValue(rv) {
		return Value{Type: Bool, Val: nil}, nil
	}
	return boolVal(isTrue(lv) || isTrue(rv)), nil
}

// Not is boolean negation.
type Not struct {
	Child Expr
}

func NewNot(child Expr) *Not { return &Not{Child: child} }

func (n *Not) Children() []Expr { return []Expr{n.Child} }

func (n *Not) WithChildren(children []Expr) Expr {
	if len(children) != 1 {
		panic("Not.WithChildren: expected exactly one child")
	}
	if children[0] == n.Child {
		return n
	}
	return &Not{Child: children[0]}
}

func (n *Not) DataType() DataType  { return Bool }
func (n *Not) IsNullable() bool    { return n.Child.IsNullable() }
func (n *Not) IsFoldable() bool    { return n.Child.IsFoldable() }
func (n *Not) IsPure() bool        { return n.Child.IsPure() }
func (n *Not) IsResolved() bool    { return n.Child.IsResolved() }
func (n *Not) ReferenceIDs() IDSet { return n.Child.ReferenceIDs() }
func (n *Not) String() string      { return fmt.Sprintf("(NOT %s)", n.Child.String()) }

func (n *Not) Eval() (Value, error) {
	ev, ok := n.Child.(Evaluator)
	if !ok {
		return Value{}, fmt.Errorf("expr: Not child %T is not foldable", n.Child)
	}
	v, err := ev.Eval()
	if err != nil {
		return Value{}, err
	}
	if isNullValue(v) {
		return Value{Type: Bool, Val: nil}, nil
	}
	return boolVal(!isTrue(v)), nil
}
