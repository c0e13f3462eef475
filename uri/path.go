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

// lookSegment matches segment = *pchar. It is greedy and always succeeds,
// possibly consuming zero bytes.
func lookSegment(input []byte, strict bool) int {
	idx := 0
	for idx < len(input) {
		n, ok := lookPchar(input[idx:], strict)
		if !ok {
			break
		}
		idx += n
	}
	return idx
}

// lookSegmentNz matches segment-nz = 1*pchar, requiring at least one byte.
func lookSegmentNz(input []byte, strict bool) (int, bool) {
	n := lookSegment(input, strict)
	if n == 0 {
		return 0, false
	}
	return n, true
}

// lookPathAbempty matches path-abempty = *( "/" segment ). It is greedy
// and always succeeds, possibly consuming zero bytes.
func lookPathAbempty(input []byte, strict bool) int {
	idx := 0
	for idx < len(input) {
		n, ok := lookSlash(input[idx:])
		if !ok {
			break
		}
		idx += n
		idx += lookSegment(input[idx:], strict)
	}
	return idx
}

// lookQuestionMarkQuery matches "?" query. The gating "?" is required and
// included in the consumed length; the query itself may be empty.
func lookQuestionMarkQuery(input []byte, strict bool) (int, bool) {
	idx, ok := lookQuestionMark(input)
	if !ok {
		return 0, false
	}
	idx += lookQueryOrFragment(input[idx:], strict)
	return idx, true
}

// lookSharpFragment matches "#" fragment. The gating "#" is required and
// included in the consumed length; the fragment itself may be empty.
func lookSharpFragment(input []byte, strict bool) (int, bool) {
	idx, ok := lookSharp(input)
	if !ok {
		return 0, false
	}
	idx += lookQueryOrFragment(input[idx:], strict)
	return idx, true
}

// lookQueryOrFragment matches *( pchar / "/" / "?" ), the shared body of
// the query and fragment productions.
func lookQueryOrFragment(input []byte, strict bool) int {
	idx := 0
	for idx < len(input) {
		if n, ok := lookPchar(input[idx:], strict); ok {
			idx += n
			continue
		}
		if input[idx] == '/' || input[idx] == '?' {
			idx++
			continue
		}
		break
	}
	return idx
}
