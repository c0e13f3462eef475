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

package uri

import (
	"bytes"
	"strings"

	"github.com/go-squeeze/squeeze/finder"
)

// Finder locates the first absolute URI embedded in a byte string:
//
//	URI = scheme ":" hier-part [ "?" query ] [ "#" fragment ]
//
// A Finder is immutable after New and safe for concurrent use.
type Finder struct {
	schemes *SchemeSet
	strict  bool
}

// New builds a Finder from cfg. Construction cannot fail: an empty or nil
// scheme set means any well-formed scheme is accepted.
func New(cfg Config) *Finder {
	return &Finder{schemes: cfg.Schemes, strict: cfg.Strict}
}

// ID returns "uri".
func (f *Finder) ID() string {
	return "uri"
}

// Find scans input for the first absolute URI and returns its half-open
// byte range, or ok == false if input holds none.
//
// The scan slides a cursor forward looking for a colon, walks leftward
// from the colon to reconstruct the longest valid scheme ending there,
// then extends rightward through hier-part, query and fragment. A URI
// whose scheme is excluded by the configured scheme set is consumed in
// full so the search resumes past it instead of reparsing its interior.
func (f *Finder) Find(input []byte) (finder.Range, bool) {
	cursor := 0
	for cursor < len(input) {
		rel := bytes.IndexByte(input[cursor:], ':')
		if rel < 0 {
			return finder.Range{}, false
		}
		colon := cursor + rel

		schemeRel, ok := findScheme(input[cursor:colon])
		if !ok {
			cursor = colon + 1
			continue
		}
		schemeStart := cursor + schemeRel
		scheme := strings.ToLower(string(input[schemeStart:colon]))
		policy := policyFor(scheme)

		end := colon + 1
		n, ok := lookHierPart(input[end:], f.strict, policy)
		if !ok {
			cursor = colon + 1
			continue
		}
		end += n
		if n, ok := lookQuestionMarkQuery(input[end:], f.strict); ok {
			end += n
		}
		if n, ok := lookSharpFragment(input[end:], f.strict); ok {
			end += n
		}

		if end == schemeStart {
			cursor = colon + 1
			continue
		}
		if f.schemes.Empty() || f.schemes.Contains(scheme) {
			return finder.Range{Start: schemeStart, End: end}, true
		}
		cursor = end
	}
	return finder.Range{}, false
}
