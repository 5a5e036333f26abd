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
	"github.com/strataql/strata/internal/optimizer/rules"
	"github.com/strataql/strata/internal/pkg/def"
)

// buildBatches assembles the default batch list (§6): the single
// "Optimizations" FixedPoint.Unlimited batch in the rule order of
// §4.3, preceded by the optional "PruneColumns" Once batch when
// enabled by options.
func buildBatches(options *def.OptimizerOptions) []RuleBatch {
	var batches []RuleBatch
	if options.Strategy.IsPruneColumnsEnabled() {
		batches = append(batches, RuleBatch{
			Name:     "PruneColumns",
			Strategy: Once,
			Rules:    []Rule{{Name: "PruneColumns", Apply: rules.PruneColumns}},
		})
	}

	optimizations := []Rule{
		{Name: "FoldConstants", Apply: rules.FoldConstants},
		{Name: "FoldLogicalPredicates", Apply: rules.FoldLogicalPredicates},
		{Name: "ReduceNegations", Apply: rules.ReduceNegations},
		{Name: "ReduceCasts", Apply: rules.ReduceCasts},
		{Name: "ReduceAliases", Apply: rules.ReduceAliases},
		{Name: "CNFConversion", Apply: rules.CNFConversion},
		{Name: "EliminateCommonPredicates", Apply: rules.EliminateCommonPredicates},
		{Name: "MergeFilters", Apply: rules.MergeFilters},
		{Name: "MergeProjects", Apply: rules.MergeProjects},
		{Name: "EliminateSubqueries", Apply: rules.EliminateSubqueries},
		{Name: "PushFiltersThroughProjects", Apply: rules.PushFiltersThroughProjects},
		{Name: "PushFiltersThroughJoins", Apply: rules.PushFiltersThroughJoins},
		{Name: "PushProjectsThroughLimits", Apply: rules.PushProjectsThroughLimits},
		{Name: "ReduceLimits", Apply: rules.ReduceLimits},
		{Name: "PushLimitsThroughUnions", Apply: rules.PushLimitsThroughUnions},
	}
	if options.Strategy.IsFoldConstantFiltersEnabled() {
		optimizations = append(optimizations, Rule{Name: "FoldConstantFilters", Apply: rules.FoldConstantFilters})
	}

	batches = append(batches, RuleBatch{
		Name:          "Optimizations",
		Strategy:      FixedPoint,
		MaxIterations: options.MaxIterations,
		Rules:         optimizations,
	})
	return batches
}
