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

// Package optimizer is the rules executor (§4.2): it drives an ordered
// list of RuleBatch over a LogicalPlan the way the teacher's
// internal/topo/planner.optimize drives its optRuleList, generalized
// from a fixed four-rule pass to named, independently-converging
// batches.
package optimizer

import (
	"fmt"

	"github.com/strataql/strata/internal/conf"
	"github.com/strataql/strata/internal/optimizer/errs"
	"github.com/strataql/strata/internal/pkg/def"
	"github.com/strataql/strata/pkg/plan"
)

// Unlimited marks a FixedPoint batch with no iteration cap (k = ∞).
const Unlimited = 0

// Strategy is a batch's convergence policy (§4.2).
type Strategy int8

const (
	// Once applies every rule in the batch exactly one pass.
	Once Strategy = iota
	// FixedPoint iterates the batch's rules until the plan stops
	// changing (structural equality) or MaxIterations passes have run.
	FixedPoint
)

// Rule is a single named rewrite: a total, sound, structure-sharing
// LogicalPlan -> LogicalPlan function (§4.2).
type Rule struct {
	Name  string
	Apply func(plan.LogicalPlan) (plan.LogicalPlan, error)
}

// RuleBatch is (name, convergence, ordered_rules) per §4.2.
type RuleBatch struct {
	Name string
	// Strategy selects Once or FixedPoint. MaxIterations only applies
	// under FixedPoint; 0 (Unlimited) means no cap.
	Strategy      Strategy
	MaxIterations int
	Rules         []Rule
}

// RulesExecutor runs an ordered list of RuleBatch over a plan tree.
type RulesExecutor struct {
	Batches []RuleBatch
	Options *def.OptimizerOptions
}

// NewRulesExecutor builds the executor's batches with buildBatches:
// when options' RuleStrategy enables them, the PruneColumns batch is
// placed before "Optimizations" and FoldConstantFilters is appended to
// it. Rules disabled by name stay in their batch and are skipped when
// the batch runs.
func NewRulesExecutor(options *def.OptimizerOptions) *RulesExecutor {
	if options == nil {
		options = def.DefaultOptions()
	}
	return &RulesExecutor{Batches: buildBatches(options), Options: options}
}

// Optimize runs every batch in order over p and returns the rewritten
// plan. A RuleConvergenceExceeded error from an inner batch is logged
// as a warning and swallowed (§7): the last plan produced by that
// batch is carried into the next one. Any other error aborts
// immediately.
func (e *RulesExecutor) Optimize(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	cur := p
	for _, batch := range e.Batches {
		next, err := e.runBatch(batch, cur)
		if err != nil {
			if errs.IsKind(err, errs.RuleConvergenceExceeded) {
				conf.Log.Warnf("optimizer: batch %q did not converge: %v", batch.Name, err)
				cur = next
				continue
			}
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func (e *RulesExecutor) runBatch(batch RuleBatch, p plan.LogicalPlan) (plan.LogicalPlan, error) {
	cur := p
	maxIter := batch.MaxIterations
	if batch.Strategy == Once {
		maxIter = 1
	}
	for iter := 1; maxIter == Unlimited || iter <= maxIter; iter++ {
		start := cur
		var err error
		for _, rule := range batch.Rules {
			if e.Options.Strategy != nil && !e.Options.Strategy.IsRuleEnabled(rule.Name) {
				continue
			}
			before := cur
			cur, err = rule.Apply(cur)
			if err != nil {
				return nil, fmt.Errorf("optimizer: batch %q rule %q: %w", batch.Name, rule.Name, err)
			}
			if e.Options.Debug && !plan.Equal(before, cur) {
				conf.Log.Debugf("optimizer: batch %q rule %q rewrote:\n- %s\n+ %s",
					batch.Name, rule.Name, plan.DebugDump(before), plan.DebugDump(cur))
			}
		}
		if batch.Strategy == Once {
			return cur, nil
		}
		if sameNode(start, cur) || plan.Equal(start, cur) {
			return cur, nil
		}
	}
	return cur, errs.New(errs.RuleConvergenceExceeded, "batch %q exceeded %d iterations without reaching a fixed point", batch.Name, maxIter)
}

// sameNode is the cheap pointer-identity convergence check (§9): an
// unchanged rewrite must return the same node instance, so comparing
// pointers short-circuits the full structural-equality walk.
func sameNode(a, b plan.LogicalPlan) bool {
	return a == b
}
