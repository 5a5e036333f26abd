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
	"math"

	"github.com/shopspring/decimal"
)

// ArithOp is the closed set of arithmetic operators.
type ArithOp int8

const (
	Add ArithOp = iota
	Sub
	Mul
	Div
)

func (o ArithOp) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}

// Arithmetic is a binary arithmetic expression: +, -, *, /. Its
// DataType is the numeric promotion of its operands (float wins over
// int), following the teacher's pkg/cast coercion rule.
type Arithmetic struct {
	Op          ArithOp
	Left, Right Expr
}

func NewArithmetic(op ArithOp, l, r Expr) *Arithmetic {
	return &Arithmetic{Op: op, Left: l, Right: r}
}

func (a *Arithmetic) Children() []Expr { return []Expr{a.Left, a.Right} }

func (a *Arithmetic) WithChildren(children []Expr) Expr {
	if len(children) != 2 {
		panic("Arithmetic.WithChildren: expected exactly two children")
	}
	if children[0] == a.Left && children[1] == a.Right {
		return a
	}
	return &Arithmetic{Op: a.Op, Left: children[0], Right: children[1]}
}

func (a *Arithmetic) DataType() DataType { return promote(a.Left.DataType(), a.Right.DataType()) }
func (a *Arithmetic) IsNullable() bool   { return childrenNullable(a.Children()) }
func (a *Arithmetic) IsFoldable() bool   { return childrenFoldable(a.Children()) }
func (a *Arithmetic) IsPure() bool       { return childrenPure(a.Children()) }
func (a *Arithmetic) IsResolved() bool {
	return childrenResolved(a.Children()) && a.Left.DataType().numeric() && a.Right.DataType().numeric()
}
func (a *Arithmetic) ReferenceIDs() IDSet { return childrenReferenceIDs(a.Children()) }
func (a *Arithmetic) String() string {
	return fmt.Sprintf("(%s %s %s)", a.Left.String(), a.Op.String(), a.Right.String())
}

func (a *Arithmetic) Eval() (Value, error) {
	lv, rv, err := evalPair(a.Left, a.Right)
	if err != nil {
		return Value{}, err
	}
	if isNullValue(lv) || isNullValue(rv) {
		return Value{Type: a.DataType(), Val: nil}, nil
	}
	result := a.DataType()
	if result == Float {
		l, r := toFloat(lv), toFloat(rv)
		switch a.Op {
		case Add:
			return Value{Type: Float, Val: l + r}, nil
		case Sub:
			return Value{Type: Float, Val: l - r}, nil
		case Mul:
			return Value{Type: Float, Val: l * r}, nil
		case Div:
			if r == 0 {
				return Value{}, fmt.Errorf("expr: division by zero is not foldable")
			}
			return Value{Type: Float, Val: l / r}, nil
		}
	}
	l, r := toInt(lv), toInt(rv)
	switch a.Op {
	case Add, Sub, Mul:
		result, ok := checkedIntArith(a.Op, l, r)
		if !ok {
			return Value{}, fmt.Errorf("expr: int arithmetic overflow evaluating %s", a.String())
		}
		return Value{Type: Int, Val: result}, nil
	case Div:
		if r == 0 {
			return Value{}, fmt.Errorf("expr: division by zero is not foldable")
		}
		if l == math.MinInt64 && r == -1 {
			return Value{}, fmt.Errorf("expr: int arithmetic overflow evaluating %s", a.String())
		}
		return Value{Type: Int, Val: l / r}, nil
	}
	return Value{}, fmt.Errorf("expr: unknown arithmetic op %v", a.Op)
}

func evalPair(l, r Expr) (Value, Value, error) {
	le, ok := l.(Evaluator)
	if !ok {
		return Value{}, Value{}, fmt.Errorf("expr: left child %T is not foldable", l)
	}
	re, ok := r.(Evaluator)
	if !ok {
		return Value{}, Value{}, fmt.Errorf("expr: right child %T is not foldable", r)
	}
	lv, err := le.Eval()
	if err != nil {
		return Value{}, Value{}, err
	}
	rv, err := re.Eval()
	if err != nil {
		return Value{}, Value{}, err
	}
	return lv, rv, nil
}

func toFloat(v Value) float64 {
	switch x := v.Val.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	default:
		return 0
	}
}

// checkedIntArith evaluates op(l, r) with decimal.Decimal rather than
// Go's wrapping int64 arithmetic, so a nested Arithmetic folds to an
// error instead of a silently wrapped literal the moment any one of
// its operators overflows; the error then propagates out through
// evalPair to every enclosing Eval call.
func checkedIntArith(op ArithOp, l, r int64) (int64, bool) {
	ld, rd := decimal.NewFromInt(l), decimal.NewFromInt(r)
	var result decimal.Decimal
	switch op {
	case Add:
		result = ld.Add(rd)
	case Sub:
		result = ld.Sub(rd)
	case Mul:
		result = ld.Mul(rd)
	}
	if result.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || result.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return 0, false
	}
	return result.IntPart(), true
}

func toInt(v Value) int64 {
	switch x := v.Val.(type) {
	case int64:
		return x
	case float64:
		return int64(x)
	default:
		return 0
	}
}
