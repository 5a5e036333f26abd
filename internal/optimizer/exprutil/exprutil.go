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

// Package exprutil holds the rule library's common helpers (§4.4):
// splitConjunction, toCNF and inlineAliases, shared by several rules
// in internal/optimizer/rules.
package exprutil

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/strataql/strata/pkg/expr"
)

// SplitConjunction flattens e into its top-level AND conjuncts, in
// left-to-right document order.
func SplitConjunction(e expr.Expr) []expr.Expr {
	and, ok := e.(*expr.And)
	if !ok {
		return []expr.Expr{e}
	}
	return append(SplitConjunction(and.Left), SplitConjunction(and.Right)...)
}

// JoinConjunction folds a non-empty conjunct list back into a single
// AND-tree, left-associative. Panics on an empty slice: callers must
// check length first, since an empty conjunct list has no expression
// that means "true" in this algebra.
func JoinConjunction(conjuncts []expr.Expr) expr.Expr {
	if len(conjuncts) == 0 {
		panic("exprutil: JoinConjunction of an empty slice")
	}
	out := conjuncts[0]
	for _, c := range conjuncts[1:] {
		out = expr.NewAnd(out, c)
	}
	return out
}

// cnfCache memoizes ToCNF by a structural hash of the subexpression,
// per §4.3 CNFConversion's termination note: repeated distribution of
// OR over AND can revisit identical subexpressions many times within
// one toCNF call.
type cnfCache map[uint64]expr.Expr

// cacheKey hashes e's string form followed, in pre-order, by the
// ExpressionID of every ID-carrying node and the DataType of every
// Literal, since String prints attributes by name only and literals
// without their type.
func cacheKey(e expr.Expr) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(e.String())
	for _, n := range expr.Collect(e, func(expr.Expr) bool { return true }) {
		if t, ok := n.(expr.Typed); ok {
			fmt.Fprintf(d, "|#%d", t.ExprID())
		} else if l, ok := n.(*expr.Literal); ok {
			fmt.Fprintf(d, "|%s", l.Type)
		}
	}
	return d.Sum64()
}

// ToCNF returns a semantically equivalent conjunctive-normal-form
// rewrite of e: eliminate double negation and push ¬ inward via De
// Morgan, then distribute ∨ over ∧.
func ToCNF(e expr.Expr) expr.Expr {
	return toCNF(e, cnfCache{})
}

func toCNF(e expr.Expr, cache cnfCache) expr.Expr {
	key := cacheKey(e)
	if v, ok := cache[key]; ok {
		return v
	}
	out := toCNFUncached(e, cache)
	cache[key] = out
	return out
}

func toCNFUncached(e expr.Expr, cache cnfCache) expr.Expr {
	switch v := e.(type) {
	case *expr.Not:
		pushed := pushNegation(v.Child)
		if n, ok := pushed.(*expr.Not); ok && n.Child == v.Child {
			// ¬ over an operand pushNegation cannot rewrite is already a CNF literal.
			return e
		}
		return toCNF(pushed, cache)
	case *expr.And:
		return expr.NewAnd(toCNF(v.Left, cache), toCNF(v.Right, cache))
	case *expr.Or:
		return distributeOr(toCNF(v.Left, cache), toCNF(v.Right, cache), cache)
	default:
		return e
	}
}

// pushNegation applies De Morgan / comparison negation one level and
// returns the (still possibly un-normalized) result for the caller to
// keep pushing down via toCNF.
func pushNegation(child expr.Expr) expr.Expr {
	switch v := child.(type) {
	case *expr.Not:
		return v.Child
	case *expr.And:
		return expr.NewOr(expr.NewNot(v.Left), expr.NewNot(v.Right))
	case *expr.Or:
		return expr.NewAnd(expr.NewNot(v.Left), expr.NewNot(v.Right))
	case *expr.Comparison:
		return expr.NewComparison(v.Op.Negate(), v.Left, v.Right)
	case *expr.IsNull:
		return expr.NewIsNotNull(v.Child)
	case *expr.IsNotNull:
		return expr.NewIsNull(v.Child)
	default:
		return expr.NewNot(child)
	}
}

// distributeOr distributes l ∨ r over any AND operand, recursively
// renormalizing the resulting AND-tree so nested ORs are also in CNF.
func distributeOr(l, r expr.Expr, cache cnfCache) expr.Expr {
	if land, ok := l.(*expr.And); ok {
		return expr.NewAnd(
			toCNF(distributeOr(land.Left, r, cache), cache),
			toCNF(distributeOr(land.Right, r, cache), cache),
		)
	}
	if rand, ok := r.(*expr.And); ok {
		return expr.NewAnd(
			toCNF(distributeOr(l, rand.Left, cache), cache),
			toCNF(distributeOr(l, rand.Right, cache), cache),
		)
	}
	return expr.NewOr(l, r)
}

// InlineAliases replaces, within e, every AttributeRef whose ID matches
// some Alias/GeneratedAlias in projectList with that alias's child
// expression. Other references are left untouched. Aliases whose child
// is impure are skipped, so references to them also stay in place.
// Callers are MergeProjects and PushFiltersThroughProjects.
func InlineAliases(projectList []expr.Expr, e expr.Expr) expr.Expr {
	bindings := map[expr.ID]expr.Expr{}
	for _, p := range projectList {
		t, ok := p.(expr.Typed)
		if !ok {
			continue
		}
		child := aliasChild(p)
		if child == nil || !child.IsPure() {
			continue
		}
		bindings[t.ExprID()] = child
	}
	if len(bindings) == 0 {
		return e
	}
	return expr.TransformDown(e, func(n expr.Expr) (expr.Expr, bool) {
		ref, ok := n.(*expr.AttributeRef)
		if !ok {
			return n, false
		}
		if bound, ok := bindings[ref.ID]; ok {
			return bound, true
		}
		return n, false
	})
}

func aliasChild(e expr.Expr) expr.Expr {
	switch v := e.(type) {
	case *expr.Alias:
		return v.Child
	case *expr.GeneratedAlias:
		return v.Child
	default:
		return nil
	}
}
