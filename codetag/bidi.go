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

package codetag

import "golang.org/x/text/unicode/bidi"

// containsBidiFormatting reports whether b carries bidirectional override,
// embedding or isolate formatting characters, or the LRM/RLM marks. A
// codetag annotation containing these can render in an order that hides
// part of its content from a reader, so such matches are discarded.
func containsBidiFormatting(b []byte) bool {
	for len(b) > 0 {
		prop, sz := bidi.Lookup(b)
		if sz == 0 {
			// Incomplete trailing UTF-8 sequence; nothing left to inspect.
			return false
		}
		switch prop.Class() {
		case bidi.LRO, bidi.RLO, bidi.LRE, bidi.RLE, bidi.PDF,
			bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI:
			return true
		}
		// U+200E LEFT-TO-RIGHT MARK and U+200F RIGHT-TO-LEFT MARK carry
		// ordinary L/R classes, so they are matched by byte pattern.
		if sz == 3 && b[0] == 0xE2 && b[1] == 0x80 && (b[2] == 0x8E || b[2] == 0x8F) {
			return true
		}
		b = b[sz:]
	}
	return false
}
