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

import "github.com/go-squeeze/squeeze/charclass"

// findScheme walks input (everything strictly before a candidate colon)
// from right to left looking for the longest run of
// ALPHA / DIGIT / "+" / "-" / "." that ends at the colon, and returns the
// index of the leftmost ALPHA seen in that run. It returns ok == false if
// the run contains no ALPHA at all, meaning the colon cannot begin a URI
// (e.g. a bare "12:" is not a scheme).
//
// Because this scans right to left and keeps overwriting the candidate
// start on every ALPHA it sees, a prefix like "1http" yields the scheme
// start at "http", not at the leading digit: the colon's scheme is the
// longest ALPHA/DIGIT/"+"/"-"/"." run, and its start is wherever the
// leftmost letter in that run happens to be.
func findScheme(input []byte) (idx int, ok bool) {
	schemeIdx := -1
	for i := len(input) - 1; i >= 0; i-- {
		c := input[i]
		if charclass.IsAlpha(c) {
			schemeIdx = i
			continue
		}
		if charclass.IsDigit(c) || c == '+' || c == '-' || c == '.' {
			continue
		}
		break
	}
	if schemeIdx < 0 {
		return 0, false
	}
	return schemeIdx, true
}
