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

package evaltest

import (
	"fmt"

	"github.com/strataql/strata/pkg/cast"
	"github.com/strataql/strata/pkg/expr"
)

func evalArith(a *expr.Arithmetic, row Row) (expr.Value, error) {
	lv, err := eval(a.Left, row)
	if err != nil {
		return expr.Value{}, err
	}
	rv, err := eval(a.Right, row)
	if err != nil {
		return expr.Value{}, err
	}
	result := a.DataType()
	if lv.Val == nil || rv.Val == nil {
		return expr.Value{Type: result, Val: nil}, nil
	}
	if result == expr.Float {
		l, r := toFloat(lv), toFloat(rv)
		switch a.Op {
		case expr.Add:
			return expr.Value{Type: expr.Float, Val: l + r}, nil
		case expr.Sub:
			return expr.Value{Type: expr.Float, Val: l - r}, nil
		case expr.Mul:
			return expr.Value{Type: expr.Float, Val: l * r}, nil
		case expr.Div:
			if r == 0 {
				return expr.Value{}, fmt.Errorf("evaltest: division by zero")
			}
			return expr.Value{Type: expr.Float, Val: l / r}, nil
		}
	}
	l, r := toInt(lv), toInt(rv)
	switch a.Op {
	case expr.Add:
		return expr.Value{Type: expr.Int, Val: l + r}, nil
	case expr.Sub:
		return expr.Value{Type: expr.Int, Val: l - r}, nil
	case expr.Mul:
		return expr.Value{Type: expr.Int, Val: l * r}, nil
	case expr.Div:
		if r == 0 {
			return expr.Value{}, fmt.Errorf("evaltest: division by zero")
		}
		return expr.Value{Type: expr.Int, Val: l / r}, nil
	}
	return expr.Value{}, fmt.Errorf("evaltest: unknown arithmetic op %v", a.Op)
}

func evalCompare(c *expr.Comparison, row Row) (expr.Value, error) {
	lv, err := eval(c.Left, row)
	if err != nil {
		return expr.Value{}, err
	}
	rv, err := eval(c.Right, row)
	if err != nil {
		return expr.Value{}, err
	}
	if lv.Val == nil || rv.Val == nil {
		return expr.Value{Type: expr.Bool, Val: nil}, nil
	}
	cmp, err := compareValues(lv, rv)
	if err != nil {
		return expr.Value{}, err
	}
	switch c.Op {
	case expr.Eq:
		return expr.Value{Type: expr.Bool, Val: cmp == 0}, nil
	case expr.Neq:
		return expr.Value{Type: expr.Bool, Val: cmp != 0}, nil
	case expr.Lt:
		return expr.Value{Type: expr.Bool, Val: cmp < 0}, nil
	case expr.Lte:
		return expr.Value{Type: expr.Bool, Val: cmp <= 0}, nil
	case expr.Gt:
		return expr.Value{Type: expr.Bool, Val: cmp > 0}, nil
	case expr.Gte:
		return expr.Value{Type: expr.Bool, Val: cmp >= 0}, nil
	}
	return expr.Value{}, fmt.Errorf("evaltest: unknown comparison op %v", c.Op)
}

func compareValues(l, r expr.Value) (int, error) {
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
			return 0, fmt.Errorf("evaltest: cannot compare string with %T", r.Val)
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
			return 0, fmt.Errorf("evaltest: cannot compare bool with %T", r.Val)
		}
		switch {
		case a == b:
			return 0, nil
		case !a && b:
			return -1, nil
		default:
			return 1, nil
		}
	default:
		return 0, fmt.Errorf("evaltest: unsupported comparison operand %T", l.Val)
	}
}

func toFloat(v expr.Value) float64 {
	switch x := v.Val.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	default:
		return 0
	}
}

func toInt(v expr.Value) int64 {
	switch x := v.Val.(type) {
	case int64:
		return x
	case float64:
		return int64(x)
	default:
		return 0
	}
}

func castValue(v expr.Value, to expr.DataType) (expr.Value, error) {
	if v.Val == nil {
		return expr.Value{Type: to, Val: nil}, nil
	}
	switch to {
	case expr.Int:
		i, err := cast.ToInt64(v.Val, cast.CONVERT_ALL)
		if err != nil {
			return expr.Value{}, fmt.Errorf("evaltest: cast to INT: %w", err)
		}
		return expr.Value{Type: expr.Int, Val: i}, nil
	case expr.Float:
		f, err := cast.ToFloat64(v.Val, cast.CONVERT_ALL)
		if err != nil {
			return expr.Value{}, fmt.Errorf("evaltest: cast to FLOAT: %w", err)
		}
		return expr.Value{Type: expr.Float, Val: f}, nil
	case expr.Bool:
		b, err := cast.ToBool(v.Val, cast.CONVERT_ALL)
		if err != nil {
			return expr.Value{}, fmt.Errorf("evaltest: cast to BOOL: %w", err)
		}
		return expr.Value{Type: expr.Bool, Val: b}, nil
	case expr.String:
		return expr.Value{Type: expr.String, Val: cast.ToStringAlways(v.Val)}, nil
	default:
		return expr.Value{}, fmt.Errorf("evaltest: no cast rule to %s", to)
	}
}
