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

package exprid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strataql/strata/pkg/expr"
)

func TestAllocator_NextNeverZero(t *testing.T) {
	a := NewAllocator("test-seed")
	for i := 0; i < 50; i++ {
		assert.NotEqual(t, expr.ID(0), a.Next())
	}
}

func TestAllocator_NextIsUniquePerCounter(t *testing.T) {
	a := NewAllocator("test-seed")
	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		id := a.Next()
		assert.False(t, seen[int64(id)], "duplicate id minted: %d", id)
		seen[int64(id)] = true
	}
}

func TestAllocator_SameSeedProducesSameSequence(t *testing.T) {
	a := NewAllocator("fixture-s1")
	b := NewAllocator("fixture-s1")
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestAllocator_DifferentSeedsDiverge(t *testing.T) {
	a := NewAllocator("fixture-s1")
	b := NewAllocator("fixture-s2")
	assert.NotEqual(t, a.Next(), b.Next())
}
