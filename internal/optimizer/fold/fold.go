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

// Package fold implements FoldConstants (§4.3): replace any expression
// where IsFoldable holds with a Literal of its evaluated value, firing
// only when evaluation is total.
package fold

import (
	"github.com/strataql/strata/pkg/expr"
)

// Constants replaces every foldable subexpression of e with a Literal.
// A single top-down pass suffices: Eval recurses through non-literal
// foldable children itself, so the first foldable ancestor visited
// folds its whole subtree in one Eval call. A node that is foldable
// but whose evaluation errors (a division by zero, or an Int
// arithmetic overflow at any nesting depth, detected by Arithmetic.Eval
// itself via decimal.Decimal) is left unchanged: FoldConstants is
// total, not partial, and never silently folds an expression whose
// runtime value would differ from the optimization-time one (§4.3
// FoldConstants: "no overflow-trapping policy configured otherwise").
func Constants(e expr.Expr) expr.Expr {
	return expr.TransformDown(e, FoldNode)
}

// FoldNode is the single-node pattern FoldConstants applies; exported
// so rules.FoldConstants can drive it directly through
// plan.TransformAllExpressions without an extra traversal layer.
func FoldNode(n expr.Expr) (expr.Expr, bool) {
	if _, isLit := n.(*expr.Literal); isLit {
		return n, false
	}
	if !n.IsFoldable() {
		return n, false
	}
	ev, ok := n.(expr.Evaluator)
	if !ok {
		return n, false
	}
	v, err := ev.Eval()
	if err != nil {
		return n, false
	}
	return expr.NewLiteral(v.Type, v.Val), true
}
