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

import (
	"fmt"
	"strings"
)

// If is a three-way conditional: If(Cond, Then, Else).
type If struct {
	Cond, Then, Else Expr
}

func NewIf(cond, then, els Expr) *If { return &If{Cond: cond, Then: then, Else: els} }

func (i *If) Children() []Expr { return []Expr{i.Cond, i.Then, i.Else} }

func (i *If) WithChildren(children []Expr) Expr {
	if len(children) != 3 {
		panic("If.WithChildren: expected exactly three children")
	}
	if children[0] == i.Cond && children[1] == i.Then && children[2] == i.Else {
		return i
	}
	return &If{Cond: children[0], Then: children[1], Else: children[2]}
}

func (i *If) DataType() DataType  { return i.Then.DataType() }
func (i *If) IsNullable() bool    { return i.Then.IsNullable() || i.Else.IsNullable() }
func (i *If) IsFoldable() bool    { return childrenFoldable(i.Children()) }
func (i *If) IsPure() bool        { return childrenPure(i.Children()) }
func (i *If) IsResolved() bool    { return childrenResolved(i.Children()) }
func (i *If) ReferenceIDs() IDSet { return childrenReferenceIDs(i.Children()) }
func (i *If) String() string {
	return fmt.Sprintf("IF(%s, %s, %s)", i.Cond.String(), i.Then.String(), i.Else.String())
}

func (i *If) Eval() (Value, error) {
	ce, ok := i.Cond.(Evaluator)
	if !ok {
		return Value{}, fmt.Errorf("expr: If condition %T is not foldable", i.Cond)
	}
	cv, err := ce.Eval()
	if err != nil {
		return Value{}, err
	}
	var branch Expr
	if isNullValue(cv) || !isTrue(cv) {
		branch = i.Else
	} else {
		branch = i.Then
	}
	be, ok := branch.(Evaluator)
	if !ok {
		return Value{}, fmt.Errorf("expr: If branch %T is not foldable", branch)
	}
	return be.Eval()
}

// Coalesce returns the first non-null argument's value, evaluating its
// arguments left to right. EliminateCommonPredicates produces a
// two-argument Coalesce(cond, y) standing in for If(cond, y, y).
type Coalesce struct {
	Args []Expr
}

func NewCoalesce(args ...Expr) *Coalesce { return &Coalesce{Args: args} }

func (c *Coalesce) Children() []Expr { return c.Args }

func (c *Coalesce) WithChildren(children []Expr) Expr {
	if len(children) != len(c.Args) {
		panic("Coalesce.WithChildren: arity mismatch")
	}
	same := true
	for i, ch := range children {
		if ch != c.Args[i] {
			same = false
			break
		}
	}
	if same {
		return c
	}
	return &Coalesce{Args: children}
}

func (c *Coalesce) DataType() DataType {
	if len(c.Args) == 0 {
		return Unknown
	}
	return c.Args[len(c.Args)-1].DataType()
}

func (c *Coalesce) IsNullable() bool {
	for _, a := range c.Args {
		if !a.IsNullable() {
			return false
		}
	}
	return true
}

func (c *Coalesce) IsFoldable() bool    { return childrenFoldable(c.Args) }
func (c *Coalesce) IsPure() bool        { return childrenPure(c.Args) }
func (c *Coalesce) IsResolved() bool    { return childrenResolved(c.Args) }
func (c *Coalesce) ReferenceIDs() IDSet { return childrenReferenceIDs(c.Args) }
func (c *Coalesce) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return "COALESCE(" + strings.Join(parts, ", ") + ")"
}

func (c *Coalesce) Eval() (Value, error) {
	for _, a := range c.Args {
		ev, ok := a.(Evaluator)
		if !ok {
			return Value{}, fmt.Errorf("expr: Coalesce argument %T is not foldable", a)
		}
		v, err := ev.Eval()
		if err != nil {
			return Value{}, err
		}
		if !isNullValue(v) {
			return v, nil
		}
	}
	return Value{Type: c.DataType(), Val: nil}, nil
}

// IsNull and IsNotNull are unary null-ness predicates.
type IsNull struct{ Child Expr }

func NewIsNull(child Expr) *IsNull { return &IsNull{Child: child} }

func (n *IsNull) Children() []Expr { return []Expr{n.Child} }

func (n *IsNull) WithChildren(children []Expr) Expr {
	if len(children) != 1 {
		panic("IsNull.WithChildren: expected exactly one child")
	}
	if children[0] == n.Child {
		return n
	}
	return &IsNull{Child: children[0]}
}

func (n *IsNull) DataType() DataType  { return Bool }
func (n *IsNull) IsNullable() bool    { return false }
func (n *IsNull) IsFoldable() bool    { return n.Child.IsFoldable() }
func (n *IsNull) IsPure() bool        { return n.Child.IsPure() }
func (n *IsNull) IsResolved() bool    { return n.Child.IsResolved() }
func (n *IsNull) ReferenceIDs() IDSet { return n.Child.ReferenceIDs() }
func (n *IsNull) String() string      { return fmt.Sprintf("(%s IS NULL)", n.Child.String()) }

func (n *IsNull) Eval() (Value, error) {
	ev, ok := n.Child.(Evaluator)
	if !ok {
		return Value{}, fmt.Errorf("expr: IsNull child %T is not foldable", n.Child)
	}
	v, err := ev.Eval()
	if err != nil {
		return Value{}, err
	}
	return boolVal(isNullValue(v)), nil
}

type IsNotNull struct{ Child Expr }

func NewIsNotNull(child Expr) *IsNotNull { return &IsNotNull{Child: child} }

func (n *IsNotNull) Children() []Expr { return []Expr{n.Child} }

func (n *IsNotNull) WithChildren(children []Expr) Expr {
	if len(children) != 1 {
		panic("IsNotNull.WithChildren: expected exactly one child")
	}
	if children[0] == n.Child {
		return n
	}
	return &IsNotNull{Child: children[0]}
}

func (n *IsNotNull) DataType() DataType  { return Bool }
func (n *IsNotNull) IsNullable() bool    { return false }
func (n *IsNotNull) IsFoldable() bool    { return n.Child.IsFoldable() }
func (n *IsNotNull) IsPure() bool        { return n.Child.IsPure() }
func (n *IsNotNull) IsResolved() bool    { return n.Child.IsResolved() }
func (n *IsNotNull) ReferenceIDs() IDSet { return n.Child.ReferenceIDs() }
func (n *IsNotNull) String() string      { return fmt.Sprintf("(%s IS NOT NULL)", n.Child.String()) }

func (n *IsNotNull) Eval() (Value, error) {
	ev, ok := n.Child.(Evaluator)
	if !ok {
		return Value{}, fmt.Errorf("expr: IsNotNull child %T is not foldable", n.Child)
	}
	v, err := ev.Eval()
	if err != nil {
		return Value{}, err
	}
	return boolVal(!isNullValue(v)), nil
}
