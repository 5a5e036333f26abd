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

package cast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToStringAlways(t *testing.T) {
	assert.Equal(t, "", ToStringAlways(nil))
	assert.Equal(t, "1", ToStringAlways(1))
	assert.Equal(t, "abc", ToStringAlways("abc"))
}

func TestToInt64(t *testing.T) {
	v, err := ToInt64(int32(3), STRICT)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), v)

	v, err = ToInt64(3.0, STRICT)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), v)

	_, err = ToInt64(3.5, STRICT)
	assert.Error(t, err)

	v, err = ToInt64("42", CONVERT_ALL)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), v)

	_, err = ToInt64("42", STRICT)
	assert.Error(t, err)
}

func TestToFloat64(t *testing.T) {
	v, err := ToFloat64(int64(3), CONVERT_SAMEKIND)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, v)

	v, err = ToFloat64("3.5", CONVERT_ALL)
	assert.NoError(t, err)
	assert.Equal(t, 3.5, v)

	_, err = ToFloat64(int64(3), STRICT)
	assert.Error(t, err)
}

func TestToBool(t *testing.T) {
	v, err := ToBool(true, STRICT)
	assert.NoError(t, err)
	assert.True(t, v)

	v, err = ToBool(int64(0), CONVERT_ALL)
	assert.NoError(t, err)
	assert.False(t, v)

	v, err = ToBool("true", CONVERT_ALL)
	assert.NoError(t, err)
	assert.True(t, v)

	_, err = ToBool("true", STRICT)
	assert.Error(t, err)
}
