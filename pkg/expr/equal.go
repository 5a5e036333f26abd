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

// Same is the `same` predicate of §4.3/§4.4: structural equivalence
// ignoring purely cosmetic metadata (Alias wrapping) but respecting
// ExpressionIDs on attribute references. Two AttributeRefs are the same
// iff their IDs match; an Alias is the same as its unwrapped child.
func Same(a, b Expr) bool {
	return sameRec(unwrapAlias(a), unwrapAlias(b))
}

func unwrapAlias(e Expr) Expr {
	switch v := e.(type) {
	case *Alias:
		return unwrapAlias(v.Child)
	case *GeneratedAlias:
		return unwrapAlias(v.Child)
	default:
		return e
	}
}

func sameRec(a, b Expr) bool {
	switch av := a.(type) {
	case *AttributeRef:
		bv, ok := b.(*AttributeRef)
		return ok && av.ID == bv.ID
	case *GeneratedAttribute:
		bv, ok := b.(*GeneratedAttribute)
		return ok && av.ID == bv.ID
	case *Literal:
		bv, ok := b.(*Literal)
		return ok && av.Type == bv.Type && av.Val == bv.Val
	case *Cast:
		bv, ok := b.(*Cast)
		return ok && av.Target == bv.Target && sameRec(unwrapAlias(av.Child), unwrapAlias(bv.Child))
	case *Arithmetic:
		bv, ok := b.(*Arithmetic)
		return ok && av.Op == bv.Op && sameRec(unwrapAlias(av.Left), unwrapAlias(bv.Left)) && sameRec(unwrapAlias(av.Right), unwrapAlias(bv.Right))
	case *Comparison:
		bv, ok := b.(*Comparison)
		return ok && av.Op == bv.Op && sameRec(unwrapAlias(av.Left), unwrapAlias(bv.Left)) && sameRec(unwrapAlias(av.Right), unwrapAlias(bv.Right))
	case *And:
		bv, ok := b.(*And)
		return ok && sameRec(unwrapAlias(av.Left), unwrapAlias(bv.Left)) && sameRec(unwrapAlias(av.Right), unwrapAlias(bv.Right))
	case *Or:
		bv, ok := b.(*Or)
		return ok && sameRec(unwrapAlias(av.Left), unwrapAlias(bv.Left)) && sameRec(unwrapAlias(av.Right), unwrapAlias(bv.Right))
	case *Not:
		bv, ok := b.(*Not)
		return ok && sameRec(unwrapAlias(av.Child), unwrapAlias(bv.Child))
	case *If:
		bv, ok := b.(*If)
		return ok && sameRec(unwrapAlias(av.Cond), unwrapAlias(bv.Cond)) && sameRec(unwrapAlias(av.Then), unwrapAlias(bv.Then)) && sameRec(unwrapAlias(av.Else), unwrapAlias(bv.Else))
	case *Coalesce:
		bv, ok := b.(*Coalesce)
		if !ok || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !sameRec(unwrapAlias(av.Args[i]), unwrapAlias(bv.Args[i])) {
				return false
			}
		}
		return true
	case *IsNull:
		bv, ok := b.(*IsNull)
		return ok && sameRec(unwrapAlias(av.Child), unwrapAlias(bv.Child))
	case *IsNotNull:
		bv, ok := b.(*IsNotNull)
		return ok && sameRec(unwrapAlias(av.Child), unwrapAlias(bv.Child))
	default:
		return false
	}
}

// Equal is the structural equality behind the fixed-point convergence
// check (through plan.Equal). A top-level Alias/GeneratedAlias must
// match exactly (name, ID and child); every other variant is compared
// by the same rules as Same, so an alias nested under a non-alias node
// is unwrapped and AttributeRefs compare by ID only (name, type and
// qualifier are not compared).
func Equal(a, b Expr) bool {
	if a == b {
		return true
	}
	return equalExact(a, b)
}

func equalExact(a, b Expr) bool {
	switch av := a.(type) {
	case *Alias:
		bv, ok := b.(*Alias)
		return ok && av.Name == bv.Name && av.ID == bv.ID && equalExact(av.Child, bv.Child)
	case *GeneratedAlias:
		bv, ok := b.(*GeneratedAlias)
		return ok && av.Name == bv.Name && av.ID == bv.ID && equalExact(av.Child, bv.Child)
	default:
		// Every other variant is compared by sameRec (see Equal).
		return sameRec(a, b)
	}
}

// EqualList compares two ordered expression lists with Equal.
func EqualList(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
