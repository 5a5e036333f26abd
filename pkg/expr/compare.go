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

// CompareOp is the closed set of comparison operators: =, ≠, <, ≤, >, ≥.
type CompareOp int8

const (
	Eq CompareOp = iota
	Neq
	Lt
	Lte
	Gt
	Gte
)

func (o CompareOp) String() string {
	switch o {
	case Eq:
		return "="
	case Neq:
		return "<>"
	case Lt:
		return "<"
	case Lte:
		return "<="
	case Gt:
		return ">"
	case Gte:
		return ">="
	default:
		return "?"
	}
}

// Negate returns the operator ReduceNegations rewrites ¬(a OP b) to,
// e.g. Negate(Gt) == Lte because ¬(a > b) = a ≤ b.
func (o CompareOp) Negate() CompareOp {
	switch o {
	case Eq:
		return Neq
	case Neq:
		return Eq
	case Lt:
		return Gte
	case Lte:
		return Gt
	case Gt:
		return Lte
	case Gte:
		return Lt
	default:
		return o
	}
}

// Comparison is a binary comparison expression, always Bool-typed.
type Comparison struct {
	Op          CompareOp
	Left, Right Expr
}

func NewComparison(op CompareOp, l, r Expr) *Comparison {
	return &Comparison{Op: op, Left: l, Right: r}
}

func (c *Comparison) Children() []Expr { return []Expr{c.Left, c.Right} }

func (c *Comparison) WithChildren(children []Expr) Expr {
	if len(children) != 2 {
		panic("Comparison.WithChildren: expected exactly two children")
	}
	if children[0] == c.Left && children[1] == c.Right {
		return c
	}
	return &Comparison{Op: c.Op, Left: children[0], Right: children[1]}
}

func (c *Comparison) DataType() DataType  { return Bool }
func (c *Comparison) IsNullable() bool    { return childrenNullable(c.Children()) }
func (c *Comparison) IsFoldable() bool    { return childrenFoldable(c.Children()) }
func (c *Comparison) IsPure() bool        { return childrenPure(c.Children()) }
func (c *Comparison) IsResolved() bool    { return childrenResolved(c.Children()) }
func (c *Comparison) ReferenceIDs() IDSet { return childrenReferenceIDs(c.Children()) }
func (c *Comparison) String() string {
	return fmt.Sprintf("(%s %s %s)", c.Left.String(), c.Op.String(), c.Right.String())
}

func (c *Comparison) Eval() (Value, error) {
	lv, rv, err := evalPair(c.Left, c.Right)
	if err != nil {
		return Value{}, err
	}
	if isNullValue(lv) || isNullValue(rv) {
		return Value{Type: Bool, Val: nil}, nil
	}
	cmp, err := compareValues(lv, rv)
	if err != nil {
		return Value{}, err
	}
	switch c.Op {
	case Eq:
		return boolVal(cmp == 0), nil
	case Neq:
		return boolVal(cmp != 0), nil
	case Lt:
		return boolVal(cmp < 0), nil
	case Lte:
		return boolVal(cmp <= 0), nil
	case Gt:
		return boolVal(cmp > 0), nil
	case Gte:
		return boolVal(cmp >= 0), nil
	}
	return Value{}, fmt.Errorf("expr: unknown comparison op %v", c.Op)
}

func compareValues(l, r Value) (int, error) {
	switch a := l.Val.(type) {
	case int64, float64:
		lf, rf := toFloat(l), toFloat(r)
		switch {
		case lf < rf:
			return -1, nil
		case lf > rf:
			return 1, nil
		default:
			return 0, nil
		}
	case string:
		b, ok := r.Val.(string)
		if !ok {
			return 0, fmt.Errorf("expr: cannot compare string with %T", r.Val)
		}
		switch {
		case a < b:
			return -1, nil
		case a > b:
			return 1, nil
		default:
			return 0, nil
		}
	case bool:
		b, ok := r.Val.(bool)
		if !ok {
			return 0, fmt.Errorf("expr: cannot compare bool with %T", r.Val)
		}
		if a == b {
			return 0, nil
		}
		if !a && b {
			return -1, nil
		}
		return 1, nil
	default:
		return 0, fmt.Errorf("expr: unsupported comparison operand %T", l.Val)
	}
}
