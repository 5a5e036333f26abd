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

package rules

import (
	"github.com/strataql/strata/internal/optimizer/exprutil"
	"github.com/strataql/strata/pkg/expr"
	"github.com/strataql/strata/pkg/plan"
)

// MergeProjects collapses an identity Project into its child, and
// merges nested Projects with alias inlining (§4.3).
func MergeProjects(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return plan.TransformDown(p, func(node plan.LogicalPlan) (plan.LogicalPlan, bool) {
		outer, ok := node.(*plan.Project)
		if !ok {
			return node, false
		}
		if projectListIsIdentity(outer.ProjectList, outer.Child.Output()) {
			return outer.Child, true
		}
		inner, ok := outer.Child.(*plan.Project)
		if !ok {
			return node, false
		}
		merged := make([]expr.Expr, len(outer.ProjectList))
		for i, e := range outer.ProjectList {
			merged[i] = exprutil.InlineAliases(inner.ProjectList, e)
		}
		return plan.NewProject(inner.Child, merged), true
	}), nil
}

// projectListIsIdentity reports whether list is exactly the bare
// attribute references of output, in the same order.
func projectListIsIdentity(list []expr.Expr, output []*expr.AttributeRef) bool {
	if len(list) != len(output) {
		return false
	}
	for i, e := range list {
		ref, ok := e.(*expr.AttributeRef)
		if !ok {
			return false
		}
		out := output[i]
		if ref.ID != out.ID || ref.Name != out.Name || ref.Type != out.Type {
			return false
		}
	}
	return true
}
