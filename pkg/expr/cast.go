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

	"github.com/strataql/strata/pkg/cast"
)

// Cast converts Child's value to Target. ReduceCasts eliminates
// redundant casts; a strictly-typed expression contains none.
type Cast struct {
	Child  Expr
	Target DataType
}

func NewCast(child Expr, target DataType) *Cast {
	return &Cast{Child: child, Target: target}
}

func (c *Cast) Children() []Expr { return []Expr{c.Child} }

func (c *Cast) WithChildren(children []Expr) Expr {
	if len(children) != 1 {
		panic("Cast.WithChildren: expected exactly one child")
	}
	if children[0] == c.Child {
		return c
	}
	return &Cast{Child: children[0], Target: c.Target}
}

func (c *Cast) DataType() DataType  { return c.Target }
func (c *Cast) IsNullable() bool    { return c.Child.IsNullable() }
func (c *Cast) IsFoldable() bool    { return c.Child.IsFoldable() }
func (c *Cast) IsPure() bool        { return c.Child.IsPure() }
func (c *Cast) IsResolved() bool    { return c.Child.IsResolved() && CastValid(c.Child.DataType(), c.Target) }
func (c *Cast) ReferenceIDs() IDSet { return c.Child.ReferenceIDs() }
func (c *Cast) String() string      { return fmt.Sprintf("CAST(%s AS %s)", c.Child.String(), c.Target.String()) }

func (c *Cast) Eval() (Value, error) {
	ev, ok := c.Child.(Evaluator)
	if !ok {
		return Value{}, fmt.Errorf("expr: cast child %T is not foldable", c.Child)
	}
	v, err := ev.Eval()
	if err != nil {
		return Value{}, err
	}
	return evalCast(v, c.Target)
}

// CastValid reports whether a cast from 'from' to 'to' is a well-typed
// conversion in this algebra. String<->numeric<->bool are all allowed;
// the identity cast is always valid.
func CastValid(from, to DataType) bool {
	if from == Unknown || to == Unknown {
		return false
	}
	return true
}

// evalCast folds a literal cast using the teacher's pkg/cast numeric
// coercion rules (CONVERT_ALL strictness: the permissive tier the
// teacher's own expression evaluator uses for implicit conversions),
// so "is this cast total" and "how does it round/truncate" both follow
// the one coercion table the rest of the engine would use at runtime.
func evalCast(v Value, to DataType) (Value, error) {
	if v.Val == nil {
		return Value{Type: to, Val: nil}, nil
	}
	switch to {
	case Int:
		i, err := cast.ToInt64(v.Val, cast.CONVERT_ALL)
		if err != nil {
			return Value{}, fmt.Errorf("expr: fold cast to INT: %w", err)
		}
		return Value{Type: Int, Val: i}, nil
	case Float:
		f, err := cast.ToFloat64(v.Val, cast.CONVERT_ALL)
		if err != nil {
			return Value{}, fmt.Errorf("expr: fold cast to FLOAT: %w", err)
		}
		return Value{Type: Float, Val: f}, nil
	case Bool:
		b, err := cast.ToBool(v.Val, cast.CONVERT_ALL)
		if err != nil {
			return Value{}, fmt.Errorf("expr: fold cast to BOOL: %w", err)
		}
		return Value{Type: Bool, Val: b}, nil
	case String:
		return Value{Type: String, Val: cast.ToStringAlways(v.Val)}, nil
	}
	return Value{}, fmt.Errorf("expr: no total constant-folding rule for cast of %v to %s", v.Val, to)
}
