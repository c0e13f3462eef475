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

// Every recognizer in this package takes the byte slice starting at the
// current parse position. Those that can fail return (n, true) if they
// matched n bytes, or (0, false) if they did not match at all; the greedy
// ones that always succeed (segment, path-abempty, port, hostname, the
// query/fragment body) return just the length. Recognizers never backtrack past
// their own boundary and never look beyond the slice they are given.

func lookByte(input []byte, want byte) (int, bool) {
	if len(input) >= 1 && input[0] == want {
		return 1, true
	}
	return 0, false
}

func lookSlash(input []byte) (int, bool)        { return lookByte(input, '/') }
func lookColon(input []byte) (int, bool)        { return lookByte(input, ':') }
func lookQuestionMark(input []byte) (int, bool) { return lookByte(input, '?') }
func lookSharp(input []byte) (int, bool)        { return lookByte(input, '#') }
func lookDot(input []byte) (int, bool)          { return lookByte(input, '.') }
func lookLeftBracket(input []byte) (int, bool)  { return lookByte(input, '[') }

// lookSlashSlash matches the literal "//" that opens an authority.
func lookSlashSlash(input []byte) (int, bool) {
	if len(input) >= 2 && input[0] == '/' && input[1] == '/' {
		return 2, true
	}
	return 0, false
}

// lookPctEncoded matches pct-encoded = "%" HEXDIG HEXDIG.
func lookPctEncoded(input []byte) (int, bool) {
	if len(input) >= 3 && input[0] == '%' && charclass.IsHexDig(input[1]) && charclass.IsHexDig(input[2]) {
		return 3, true
	}
	return 0, false
}

// lookPchar matches pchar = unreserved / pct-encoded / sub-delims / ":" / "@".
func lookPchar(input []byte, strict bool) (int, bool) {
	if n, ok := lookPctEncoded(input); ok {
		return n, true
	}
	if len(input) == 0 {
		return 0, false
	}
	c := input[0]
	if charclass.IsUnreserved(c) || charclass.IsSubDelim(c, strict) || c == ':' || c == '@' {
		return 1, true
	}
	return 0, false
}
