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

// Package finder declares the capability shared by every extractor in this
// repository: a stable id and a stateless, repeatable Find over a byte
// slice. uri.Finder, codetag.Finder and mirror.Finder each implement it.
package finder

// Range is a half-open byte range [Start, End) into the slice a Finder was
// asked to search. The uri and codetag finders never return an empty
// Range; the mirror finder returns one exactly when its input is empty,
// which the outer tokenization loop discards.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes spanned by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Finder is implemented by every extractor. An implementation must be
// stateless after construction: repeated calls to Find on the same input
// must return the same result, and it must be safe to call Find
// concurrently from multiple goroutines given an immutable configuration.
type Finder interface {
	// ID returns a stable identifier for the finder, e.g. "uri", "codetag",
	// "mirror".
	ID() string

	// Find returns the first match in b, or ok == false if b holds no
	// match. The caller is expected to retry Find on b[match.End:] to find
	// subsequent matches (see the outer tokenization loop in
	// internal/tokenize).
	Find(b []byte) (match Range, ok bool)
}
