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


package gclplugin

import staleread "fillmore-labs.com/staleread/analyzer"

// Settings is the golangci-lint configuration of the staleread linter.
type Settings struct {
	// Range enables checks of range statements assigning key and value.
	Range *bool `json:"range,omitzero"`
}

// Options converts the settings into analyzer options.
func (s Settings) Options() []staleread.Option {
	var opts []staleread.Option

	opts = appendOption(opts, s.Range, staleread.WithRange)

	return opts
}

func appendOption[T any](opts []staleread.Option, value *T, constructor func(T) staleread.Option) []staleread.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
