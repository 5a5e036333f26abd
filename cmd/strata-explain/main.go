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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/strataql/strata/internal/conf"
	"github.com/strataql/strata/internal/fixture"
	"github.com/strataql/strata/internal/optimizer"
	"github.com/strataql/strata/internal/pkg/def"
	"github.com/strataql/strata/pkg/plan"
)

var (
	planPath    string
	optionsPath string
)

func init() {
	flag.StringVar(&planPath, "plan", "", "path to a JSON logical plan fixture")
	flag.StringVar(&optionsPath, "options", "", "path to a YAML OptimizerOptions file (optional)")
}

func main() {
	flag.Parse()
	if planPath == "" {
		conf.Log.Errorf("strata-explain: -plan is required")
		os.Exit(1)
	}

	b, err := os.ReadFile(planPath)
	if err != nil {
		conf.Log.Errorf("strata-explain: %s", err)
		os.Exit(1)
	}

	p, err := fixture.LoadPlan(b)
	if err != nil {
		conf.Log.Errorf("strata-explain: %s", err)
		os.Exit(1)
	}

	options := def.DefaultOptions()
	if optionsPath != "" {
		options, err = conf.LoadOptionsFromPath(optionsPath)
		if err != nil {
			conf.Log.Errorf("strata-explain: %s", err)
			os.Exit(1)
		}
	}

	fmt.Println("== before ==")
	fmt.Println(plan.PrettyTree(p))

	out, err := optimizer.Optimize(p, options)
	if err != nil {
		conf.Log.Errorf("strata-explain: optimize: %s", err)
		os.Exit(1)
	}

	fmt.Println("== after ==")
	fmt.Println(plan.PrettyTree(out))
}
