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

package plan

import "github.com/strataql/strata/pkg/expr"

// Rule is a plan rewrite function, same contract as expr.Rule.
type Rule func(p LogicalPlan) (LogicalPlan, bool)

// TransformDown applies f in pre-order: to p first, then to the
// (possibly rewritten) children. Structure-sharing: an unchanged
// subtree is returned as the same instance.
func TransformDown(p LogicalPlan, f Rule) LogicalPlan {
	cur := p
	if out, ok := f(cur); ok {
		cur = out
	}
	children := cur.Children()
	if len(children) == 0 {
		return cur
	}
	newChildren := make([]LogicalPlan, len(children))
	changed := false
	for i, c := range children {
		newChildren[i] = TransformDown(c, f)
		if newChildren[i] != c {
			changed = true
		}
	}
	if !changed {
		return cur
	}
	return cur.WithChildren(newChildren)
}

// TransformUp applies f in post-order: children first, then self.
func TransformUp(p LogicalPlan, f Rule) LogicalPlan {
	children := p.Children()
	var rewritten LogicalPlan
	if len(children) == 0 {
		rewritten = p
	} else {
		newChildren := make([]LogicalPlan, len(children))
		changed := false
		for i, c := range children {
			newChildren[i] = TransformUp(c, f)
			if newChildren[i] != c {
				changed = true
			}
		}
		if changed {
			rewritten = p.WithChildren(newChildren)
		} else {
			rewritten = p
		}
	}
	if out, ok := f(rewritten); ok {
		return out
	}
	return rewritten
}

// ExprRule rewrites a single expression; used by TransformAllExpressions.
type ExprRule = expr.Rule

// TransformAllExpressions walks every expression slot of every plan
// node (via Expressions/WithExpressions) and applies expr.TransformDown
// with f to each, returning a structurally updated plan. Plan children
// are walked first (post-order over the plan tree; each node's own
// expression slots are rewritten at that node).
func TransformAllExpressions(p LogicalPlan, f ExprRule) LogicalPlan {
	children := p.Children()
	newChildren := make([]LogicalPlan, len(children))
	childChanged := false
	for i, c := range children {
		newChildren[i] = TransformAllExpressions(c, f)
		if newChildren[i] != c {
			childChanged = true
		}
	}
	cur := p
	if childChanged {
		cur = p.WithChildren(newChildren)
	}
	exprs := cur.Expressions()
	if len(exprs) == 0 {
		return cur
	}
	newExprs := make([]expr.Expr, len(exprs))
	exprChanged := false
	for i, e := range exprs {
		newExprs[i] = expr.TransformDown(e, f)
		if newExprs[i] != e {
			exprChanged = true
		}
	}
	if !exprChanged {
		return cur
	}
	return cur.WithExpressions(newExprs)
}

// CollectFromAllExpressions returns, in document order, every match of
// pf across every expression slot of every plan node (parent before
// children, left before right, matching the plan's own child order).
func CollectFromAllExpressions(p LogicalPlan, pf expr.MatchFunc) []expr.Expr {
	var out []expr.Expr
	for _, e := range p.Expressions() {
		out = append(out, expr.Collect(e, pf)...)
	}
	for _, c := range p.Children() {
		out = append(out, CollectFromAllExpressions(c, pf)...)
	}
	return out
}
