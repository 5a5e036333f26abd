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

// Package exprid mints ExpressionIDs for fixtures and the analyzer
// contract boundary. The optimizer itself never calls this package —
// rules must preserve IDs, never invent them (§3 Identifier
// discipline) — it exists for callers building resolved plans (tests,
// cmd/strata-explain fixtures) who need IDs that are unique within a
// plan and stable across repeated runs of the same fixture.
package exprid

import (
	"encoding/binary"
	"strconv"

	"github.com/google/uuid"

	"github.com/strataql/strata/pkg/expr"
)

// Allocator mints deterministic expr.IDs by hashing a namespace seed
// and a monotonic counter through a version-5 (SHA-1) UUID, the way
// the teacher mints stable identifiers for xsql's uuid() builtin
// (xsql/funcs_misc.go) — generalized from a random v1 UUID to a
// namespaced v5 one so two Allocators built from the same seed produce
// the same ID sequence, which fixture-based tests rely on.
type Allocator struct {
	namespace uuid.UUID
	counter   int64
}

// NewAllocator derives the allocator's namespace from seed; any two
// Allocators created with the same seed mint the same ID sequence.
func NewAllocator(seed string) *Allocator {
	return &Allocator{namespace: uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))}
}

// Next returns the next ExpressionID in this allocator's deterministic
// sequence. IDs are never zero.
func (a *Allocator) Next() expr.ID {
	for {
		a.counter++
		id := uuid.NewSHA1(a.namespace, []byte(strconv.FormatInt(a.counter, 10)))
		v := int64(binary.BigEndian.Uint64(id[:8]) &^ (1 << 63))
		if v != 0 {
			return expr.ID(v)
		}
	}
}
