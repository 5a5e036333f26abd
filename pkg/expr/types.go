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

// Package expr is the expression algebra: leaf values, references,
// arithmetic/logical/comparison operators, conditionals, casts and
// aliases, all pure and typed.
package expr

// DataType is the closed set of scalar types a resolved expression may
// carry. The optimizer never invents a new DataType; it is assigned by
// the (out of scope) analyzer and must be preserved across rewrites.
type DataType int8

const (
	Unknown DataType = iota
	Int
	Float
	String
	Bool
)

func (t DataType) String() string {
	switch t {
	case Int:
		return "INT"
	case Float:
		return "FLOAT"
	case String:
		return "STRING"
	case Bool:
		return "BOOL"
	default:
		return "UNKNOWN"
	}
}

// numeric reports whether t participates in arithmetic promotion.
func (t DataType) numeric() bool {
	return t == Int || t == Float
}

// promote returns the wider of two numeric types, following the teacher's
// own int/float coercion rule in pkg/cast: float wins over int.
func promote(a, b DataType) DataType {
	if a == Float || b == Float {
		return Float
	}
	return Int
}
