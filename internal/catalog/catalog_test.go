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

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataql/strata/internal/exprid"
	"github.com/strataql/strata/pkg/expr"
)

const sample = `
relations:
  - name: t1
    columns:
      - {name: a, type: INT}
      - {name: b, type: STRING, nullable: true}
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ParsesRelationsAndColumns(t *testing.T) {
	path := writeCatalog(t, sample)
	c, err := Load(path)
	require.NoError(t, err)
	r, ok := c.Relations["t1"]
	require.True(t, ok)
	require.Len(t, r.Columns, 2)
	assert.Equal(t, "a", r.Columns[0].Name)
	assert.Equal(t, "INT", r.Columns[0].Type)
	assert.False(t, r.Columns[0].Nullable)
	assert.True(t, r.Columns[1].Nullable)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestResolve_BuildsLocalRelationWithAllocatedIDs(t *testing.T) {
	path := writeCatalog(t, sample)
	c, err := Load(path)
	require.NoError(t, err)

	ids := exprid.NewAllocator("catalog-test")
	rel, err := c.Resolve("t1", ids)
	require.NoError(t, err)
	assert.Equal(t, "t1", rel.Name)
	out := rel.Output()
	require.Len(t, out, 2)
	assert.Equal(t, expr.Int, out[0].Type)
	assert.Equal(t, expr.String, out[1].Type)
	assert.NotEqual(t, expr.ID(0), out[0].ID)
	assert.NotEqual(t, out[0].ID, out[1].ID)
}

func TestResolve_UnknownRelationErrors(t *testing.T) {
	path := writeCatalog(t, sample)
	c, err := Load(path)
	require.NoError(t, err)
	_, err = c.Resolve("nope", exprid.NewAllocator("x"))
	assert.Error(t, err)
}

func TestResolve_UnknownColumnTypeErrors(t *testing.T) {
	path := writeCatalog(t, `
relations:
  - name: t1
    columns:
      - {name: a, type: WEIRD}
`)
	c, err := Load(path)
	require.NoError(t, err)
	_, err = c.Resolve("t1", exprid.NewAllocator("x"))
	assert.Error(t, err)
}
