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

	"github.com/go-squeeze/squeeze/charclass"
)

// userinfoLookahead bounds the scan for the "@" that terminates userinfo.
const userinfoLookahead = 256

// lookAuthority matches authority = [ userinfo "@" ] host [ ":" port ].
// The host is required; userinfo and port are optional. When the resolved
// host has zero length and the scheme policy carries disallowEmptyHost,
// the whole authority is rejected.
func lookAuthority(input []byte, strict bool, policy policyFlags) (int, bool) {
	idx := 0
	if n, ok := lookUserinfoAt(input[idx:], strict); ok {
		idx += n
	}
	hostLen, ok := lookHost(input[idx:])
	if !ok {
		return 0, false
	}
	if hostLen == 0 && policy.disallowsEmptyHost() {
		return 0, false
	}
	idx += hostLen
	if n, ok := lookColonPort(input[idx:]); ok {
		idx += n
	}
	return idx, true
}

// lookUserinfoAt matches userinfo "@". It scans at most userinfoLookahead
// bytes ahead for an "@" and verifies the bytes before it all belong to
// userinfo = *( unreserved / pct-encoded / sub-delims / ":" ). Absence of
// an "@" (or a non-userinfo byte before it) is not an error: userinfo is
// optional and the caller simply proceeds to the host.
func lookUserinfoAt(input []byte, strict bool) (int, bool) {
	window := input
	if len(window) > userinfoLookahead {
		window = window[:userinfoLookahead]
	}
	at := bytes.IndexByte(window, '@')
	if at < 0 {
		return 0, false
	}
	if !isUserinfo(input[:at], strict) {
		return 0, false
	}
	return at + 1, true
}

// isUserinfo reports whether every byte of input belongs to
// *( unreserved / pct-encoded / sub-delims / ":" ).
func isUserinfo(input []byte, strict bool) bool {
	idx := 0
	for idx < len(input) {
		if n, ok := lookPctEncoded(input[idx:]); ok {
			idx += n
			continue
		}
		c := input[idx]
		if charclass.IsUnreserved(c) || charclass.IsSubDelim(c, strict) || c == ':' {
			idx++
			continue
		}
		return false
	}
	return true
}

// lookColonPort matches ":" port, where port = *DIGIT: the port digits may
// be entirely absent, but the colon is required.
func lookColonPort(input []byte) (int, bool) {
	idx, ok := lookColon(input)
	if !ok {
		return 0, false
	}
	idx += lookPort(input[idx:])
	return idx, true
}

// lookPort matches port = *DIGIT, returning the number of digits consumed
// (possibly zero).
func lookPort(input []byte) int {
	idx := 0
	for idx < len(input) && charclass.IsDigit(input[idx]) {
		idx++
	}
	return idx
}
