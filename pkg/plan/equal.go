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

// Equal is attribute- and child-wise structural equality, the
// convergence check the rules executor uses to detect a fixed point
// (§4.1, §4.2): two plans are equal when they have the same variant,
// the same operator-local attributes, the same expression slots
// (expr.Equal) and structurally equal children, or are literally the
// same instance (pointer identity, valid because unchanged rewrites
// return the same node per the structure-sharing requirement).
func Equal(a, b LogicalPlan) bool {
	if a == b {
		return true
	}
	switch av := a.(type) {
	case *LocalRelation:
		bv, ok := b.(*LocalRelation)
		return ok && av.Name == bv.Name && attrsEqual(av.out, bv.out) && len(av.Rows) == len(bv.Rows)
	case *Project:
		bv, ok := b.(*Project)
		return ok && expr.EqualList(av.ProjectList, bv.ProjectList) && Equal(av.Child, bv.Child)
	case *Filter:
		bv, ok := b.(*Filter)
		return ok && expr.Equal(av.Condition, bv.Condition) && Equal(av.Child, bv.Child)
	case *Join:
		bv, ok := b.(*Join)
		if !ok || av.Type != bv.Type {
			return false
		}
		if (av.Condition == nil) != (bv.Condition == nil) {
			return false
		}
		if av.Condition != nil && !expr.Equal(av.Condition, bv.Condition) {
			return false
		}
		return Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)
	case *Limit:
		bv, ok := b.(*Limit)
		return ok && expr.Equal(av.N, bv.N) && Equal(av.Child, bv.Child)
	case *Union:
		bv, ok := b.(*Union)
		return ok && Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)
	case *Subquery:
		bv, ok := b.(*Subquery)
		return ok && av.Alias == bv.Alias && Equal(av.Child, bv.Child)
	default:
		return false
	}
}

func attrsEqual(a, b []*expr.AttributeRef) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Name != b[i].Name || a[i].Type != b[i].Type {
			return false
		}
	}
	return true
}
