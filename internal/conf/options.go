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

package conf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strataql/strata/internal/pkg/def"
)

// LoadOptionsFromPath reads an OptimizerOptions YAML file, following
// the teacher's own LoadConfigFromPath pattern (internal/conf/load.go):
// read the whole file, then yaml.Unmarshal into the destination struct.
func LoadOptionsFromPath(path string) (*def.OptimizerOptions, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("conf: read options file %s: %w", path, err)
	}
	opts := def.DefaultOptions()
	if err := yaml.Unmarshal(b, opts); err != nil {
		return nil, fmt.Errorf("conf: parse options file %s: %w", path, err)
	}
	return opts, nil
}
