/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package tokenize drives a finder across a whole input line. A finder
// only reports the first match in the bytes it is handed; this package
// supplies the outer loop that re-invokes it on the remaining suffix after
// every match, so a single line can yield several tokens.
package tokenize

import (
	"bytes"

	"github.com/go-squeeze/squeeze/finder"
)

// Each invokes f repeatedly over line, advancing past each match, and
// calls emit once per token. The emitted token is the matched bytes with
// surrounding whitespace trimmed; tokens that trim to nothing are dropped
// without being emitted. emit returns false to stop early, in which case
// Each returns true.
func Each(line []byte, f finder.Finder, emit func(token []byte) bool) (stopped bool) {
	idx := 0
	for idx < len(line) {
		r, ok := f.Find(line[idx:])
		if !ok || r.End == 0 {
			break
		}
		token := bytes.TrimSpace(line[idx+r.Start : idx+r.End])
		idx += r.End
		if len(token) == 0 {
			continue
		}
		if !emit(token) {
			return true
		}
	}
	return false
}
