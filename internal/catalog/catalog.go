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

// Package catalog loads the one piece of "schema" this optimizer spec
// allows: a YAML description of each fixture relation's name and typed
// columns, used to build LocalRelation.output at test/CLI fixture
// construction time. The optimizer proper never consults it — rules
// only ever see an already-resolved plan.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strataql/strata/internal/exprid"
	"github.com/strataql/strata/pkg/expr"
	"github.com/strataql/strata/pkg/plan"
)

// Column is one YAML-declared column: name, type ("INT"/"FLOAT"/
// "STRING"/"BOOL") and nullability.
type Column struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable"`
}

// Relation is one YAML-declared relation: a name and ordered columns.
type Relation struct {
	Name    string   `yaml:"name"`
	Columns []Column `yaml:"columns"`
}

// Catalog is a named set of Relations, keyed by Relation.Name.
type Catalog struct {
	Relations map[string]Relation
}

// document is the on-disk shape: a top-level "relations" list.
type document struct {
	Relations []Relation `yaml:"relations"`
}

// Load reads a YAML catalog file of the form:
//
//	relations:
//	  - name: t1
//	    columns:
//	      - {name: a, type: INT}
//	      - {name: b, type: INT, nullable: true}
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	c := &Catalog{Relations: make(map[string]Relation, len(doc.Relations))}
	for _, r := range doc.Relations {
		c.Relations[r.Name] = r
	}
	return c, nil
}

// parseType maps a catalog column type name to an expr.DataType.
func parseType(name string) (expr.DataType, error) {
	switch name {
	case "INT":
		return expr.Int, nil
	case "FLOAT":
		return expr.Float, nil
	case "STRING":
		return expr.String, nil
	case "BOOL":
		return expr.Bool, nil
	default:
		return expr.Unknown, fmt.Errorf("catalog: unknown column type %q", name)
	}
}

// Resolve builds a resolved *plan.LocalRelation for the named
// relation, minting a fresh ExpressionID per column via ids. Returns
// an error if name is not in the catalog or a column's type is
// unrecognized.
func (c *Catalog) Resolve(name string, ids *exprid.Allocator) (*plan.LocalRelation, error) {
	r, ok := c.Relations[name]
	if !ok {
		return nil, fmt.Errorf("catalog: unknown relation %q", name)
	}
	out := make([]*expr.AttributeRef, len(r.Columns))
	for i, col := range r.Columns {
		t, err := parseType(col.Type)
		if err != nil {
			return nil, err
		}
		out[i] = expr.NewAttributeRef(ids.Next(), col.Name, t, col.Nullable)
	}
	return plan.NewLocalRelation(r.Name, out, nil), nil
}
