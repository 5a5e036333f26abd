// Copyright 2021-2022 EMQ Technologies Co., Ltd.
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

// Package cast is the engine-wide numeric/string coercion layer,
// trimmed from the teacher's pkg/cast down to the conversions the
// expression evaluator actually needs to fold literal casts
// (pkg/expr.Cast.Eval): strings, ints, floats and bools under a
// strictness tier, rather than the full int8..uint64/slice/struct
// coercion matrix the streaming engine's dynamic row model required.
package cast

import (
	"fmt"
	"strconv"
)

// Strictness controls how aggressively ToX converts across Go kinds.
type Strictness int8

const (
	STRICT Strictness = iota
	CONVERT_SAMEKIND
	CONVERT_ALL
)

func ToStringAlways(input interface{}) string {
	if input == nil {
		return ""
	}
	return fmt.Sprintf("%v", input)
}

func ToString(input interface{}, sn Strictness) (string, error) {
	switch s := input.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		if sn == CONVERT_ALL {
			switch s := input.(type) {
			case bool:
				return strconv.FormatBool(s), nil
			case float64:
				return strconv.FormatFloat(s, 'f', -1, 64), nil
			case float32:
				return strconv.FormatFloat(float64(s), 'f', -1, 32), nil
			case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
				return fmt.Sprintf("%d", s), nil
			}
		}
	}
	return "", fmt.Errorf("cannot convert %[1]T(%[1]v) to string", input)
}

func ToInt64(input interface{}, sn Strictness) (int64, error) {
	switch s := input.(type) {
	case int:
		return int64(s), nil
	case int64:
		return s, nil
	case int32:
		return int64(s), nil
	case int16:
		return int64(s), nil
	case int8:
		return int64(s), nil
	case uint:
		return int64(s), nil
	case uint64:
		return int64(s), nil
	case uint32:
		return int64(s), nil
	case uint16:
		return int64(s), nil
	case uint8:
		return int64(s), nil
	case float64:
		if sn != STRICT || isIntegral64(s) {
			return int64(s), nil
		}
	case float32:
		if sn != STRICT || isIntegral32(s) {
			return int64(s), nil
		}
	case string:
		if sn == CONVERT_ALL {
			v, err := strconv.ParseInt(s, 0, 0)
			if err == nil {
				return v, nil
			}
		}
	case bool:
		if sn == CONVERT_ALL {
			if s {
				return 1, nil
			}
			return 0, nil
		}
	case nil:
		if sn == CONVERT_ALL {
			return 0, nil
		}
	}
	return 0, fmt.Errorf("cannot convert %[1]T(%[1]v) to int64", input)
}

func ToFloat64(input interface{}, sn Strictness) (float64, error) {
	switch s := input.(type) {
	case float64:
		return s, nil
	case float32:
		return float64(s), nil
	case int:
		if sn != STRICT {
			return float64(s), nil
		}
	case int64:
		if sn != STRICT {
			return float64(s), nil
		}
	case int32:
		if sn != STRICT {
			return float64(s), nil
		}
	case int16:
		if sn != STRICT {
			return float64(s), nil
		}
	case int8:
		if sn != STRICT {
			return float64(s), nil
		}
	case uint:
		if sn != STRICT {
			return float64(s), nil
		}
	case uint64:
		if sn != STRICT {
			return float64(s), nil
		}
	case uint32:
		if sn != STRICT {
			return float64(s), nil
		}
	case uint16:
		if sn != STRICT {
			return float64(s), nil
		}
	case uint8:
		if sn != STRICT {
			return float64(s), nil
		}
	case string:
		if sn == CONVERT_ALL {
			v, err := strconv.ParseFloat(s, 64)
			if err == nil {
				return v, nil
			}
		}
	case bool:
		if sn == CONVERT_ALL {
			if s {
				return 1, nil
			}
			return 0, nil
		}
	}
	return 0, fmt.Errorf("cannot convert %[1]T(%[1]v) to float64", input)
}

func ToBool(input interface{}, sn Strictness) (bool, error) {
	switch b := input.(type) {
	case bool:
		return b, nil
	case nil:
		if sn == CONVERT_ALL {
			return false, nil
		}
	case int:
		if sn == CONVERT_ALL {
			return b != 0, nil
		}
	case int64:
		if sn == CONVERT_ALL {
			return b != 0, nil
		}
	case float64:
		if sn == CONVERT_ALL {
			return b != 0, nil
		}
	case string:
		if sn == CONVERT_ALL {
			return strconv.ParseBool(b)
		}
	}
	return false, fmt.Errorf("cannot convert %[1]T(%[1]v) to bool", input)
}

func isIntegral64(val float64) bool {
	return val == float64(int64(val))
}

func isIntegral32(val float32) bool {
	return val == float32(int32(val))
}
