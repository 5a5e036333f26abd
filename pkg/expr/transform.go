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

// Rule is a rewrite function: it returns the rewritten expression, or
// ok=false when it does not match e (the input is returned unchanged
// by TransformDown/TransformUp in that case).
type Rule func(e Expr) (Expr, bool)

// TransformDown applies f in pre-order: to e first, then to the
// (possibly already-rewritten) children. Unchanged subtrees are
// returned as the same instance (structure sharing).
func TransformDown(e Expr, f Rule) Expr {
	cur := e
	if out, ok := f(cur); ok {
		cur = out
	}
	children := cur.Children()
	if len(children) == 0 {
		return cur
	}
	newChildren := make([]Expr, len(children))
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

// TransformUp applies f in post-order: to children first, then to self.
func TransformUp(e Expr, f Rule) Expr {
	children := e.Children()
	var rewritten Expr
	if len(children) == 0 {
		rewritten = e
	} else {
		newChildren := make([]Expr, len(children))
		changed := false
		for i, c := range children {
			newChildren[i] = TransformUp(c, f)
			if newChildren[i] != c {
				changed = true
			}
		}
		if changed {
			rewritten = e.WithChildren(newChildren)
		} else {
			rewritten = e
		}
	}
	if out, ok := f(rewritten); ok {
		return out
	}
	return rewritten
}

// MatchFunc reports whether a node matches a predicate used by Collect.
type MatchFunc func(e Expr) bool

// Collect returns, in document (pre-)order, every subexpression of e
// for which match returns true.
func Collect(e Expr, match MatchFunc) []Expr {
	var out []Expr
	var walk func(Expr)
	walk = func(n Expr) {
		if match(n) {
			out = append(out, n)
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(e)
	return out
}
