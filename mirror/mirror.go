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

// Package mirror implements the simplest possible finder.Finder: one that
// returns its entire input as a single match. It exists for pipeline
// debugging (--mirror on the CLI): piping text through squeeze with only
// the mirror finder enabled shows exactly what the line loop feeds the
// real finders.
package mirror

import "github.com/go-squeeze/squeeze/finder"

// Finder mirrors its input: Find always succeeds, returning [0, len(b)).
type Finder struct{}

// New returns a ready-to-use mirror Finder. Construction cannot fail.
func New() *Finder {
	return &Finder{}
}

// ID returns "mirror".
func (f *Finder) ID() string {
	return "mirror"
}

// Find always returns the whole of b. The outer tokenization loop is
// responsible for discarding the trailing empty match this produces once
// b is exhausted.
func (f *Finder) Find(b []byte) (finder.Range, bool) {
	return finder.Range{Start: 0, End: len(b)}, true
}
