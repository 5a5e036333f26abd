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

package optimizer

import (
	"github.com/strataql/strata/internal/optimizer/errs"
	"github.com/strataql/strata/internal/pkg/def"
	"github.com/strataql/strata/pkg/plan"
)

// Optimize is the package's core API (§6): it runs the default
// RulesExecutor over p and returns the rewritten plan. It fails with
// errs.Unresolved if p does not satisfy the precondition, and with
// errs.InternalInvariantViolation if a rule produced a plan that is no
// longer resolved (a bug in a rule, not a caller error).
func Optimize(p plan.LogicalPlan, options *def.OptimizerOptions) (plan.LogicalPlan, error) {
	if !p.IsResolved() {
		return nil, errs.New(errs.Unresolved, "input plan is not resolved: %s", plan.PrettyTree(p))
	}
	out, err := NewRulesExecutor(options).Optimize(p)
	if err != nil {
		return nil, err
	}
	if !out.IsResolved() {
		return nil, errs.New(errs.InternalInvariantViolation, "optimized plan is not resolved: %s", plan.PrettyTree(out))
	}
	return out, nil
}
