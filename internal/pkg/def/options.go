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

// Package def holds the optimizer's configuration shapes, generalized
// from the teacher's internal/pkg/def.RuleOption/PlanOptimizeStrategy:
// a YAML/JSON-tagged struct toggling individual rules and iteration
// bounds instead of requiring a code change.
package def

// OptimizerOptions configures a RulesExecutor run.
type OptimizerOptions struct {
	Debug bool `json:"debug" yaml:"debug"`
	// MaxIterations caps every FixedPoint(Unlimited) batch when >0;
	// 0 means unlimited, the shipped default (§4.2).
	MaxIterations int `json:"maxIterations,omitempty" yaml:"maxIterations,omitempty"`
	// Strategy toggles individual rules on/off by name without a code
	// change, mirroring PlanOptimizeStrategy's per-rule disable flags.
	Strategy *RuleStrategy `json:"ruleStrategy,omitempty" yaml:"ruleStrategy,omitempty"`
}

// RuleStrategy disables individual rules or optional batches by name.
// A nil *RuleStrategy (or a nil *OptimizerOptions) means "all shipped
// defaults enabled", matching PlanOptimizeStrategy's nil-receiver
// semantics.
type RuleStrategy struct {
	DisabledRules []string `json:"disabledRules,omitempty" yaml:"disabledRules,omitempty"`
	// EnablePruneColumns turns on the optional, non-default PruneColumns
	// batch (SPEC_FULL.md "Supplemented Features").
	EnablePruneColumns bool `json:"enablePruneColumns,omitempty" yaml:"enablePruneColumns,omitempty"`
	// EnableFoldConstantFilters turns on the optional FoldConstantFilters
	// rule (§9(c) open question, left out of the default batch).
	EnableFoldConstantFilters bool `json:"enableFoldConstantFilters,omitempty" yaml:"enableFoldConstantFilters,omitempty"`
}

func (s *RuleStrategy) IsRuleEnabled(name string) bool {
	if s == nil {
		return true
	}
	for _, d := range s.DisabledRules {
		if d == name {
			return false
		}
	}
	return true
}

func (s *RuleStrategy) IsPruneColumnsEnabled() bool {
	return s != nil && s.EnablePruneColumns
}

func (s *RuleStrategy) IsFoldConstantFiltersEnabled() bool {
	return s != nil && s.EnableFoldConstantFilters
}

func DefaultOptions() *OptimizerOptions {
	return &OptimizerOptions{}
}
