// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0


package config_test

import (
	"testing"

	. "fillmore-labs.com/staleread/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(IncludeGenerated)

	if !b.Enabled(IncludeGenerated) || b.Enabled(RangeStatements) {
		t.Fatalf("NewBitMask(IncludeGenerated) = %+v", b)
	}

	b.Set(RangeStatements, true)
	b.Set(IncludeGenerated, false)

	if b.Enabled(IncludeGenerated) || !b.Enabled(RangeStatements) {
		t.Errorf("After Set: %+v", b)
	}

	b.Disable(RangeStatements)

	if b != (Behavior{}) {
		t.Errorf("After Disable: %+v, want empty", b)
	}
}
