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

// h16MaxDigits is the maximum length of an h16 group (1-4 hex digits).
const h16MaxDigits = 4

// ipv6AddressBytes is the number of bytes a fully expanded IPv6 address
// occupies (eight 2-byte groups).
const ipv6AddressBytes = 16

// ipv6BytesBeforeTrailingIPv4 is the byte count at which an embedded IPv4
// literal becomes the only thing that can still fit without "::".
const ipv6BytesBeforeTrailingIPv4 = 12

// lookH16 matches h16 = 1*4HEXDIG.
func lookH16(input []byte) (int, bool) {
	n := 0
	for n < len(input) && n < h16MaxDigits && charclass.IsHexDig(input[n]) {
		n++
	}
	if n == 0 {
		return 0, false
	}
	return n, true
}

// isIPv6Address implements RFC 4291 Section 2.2's syntax, including "::"
// compression and an optional trailing embedded IPv4 literal, as an
// ad-hoc byte-counted state machine instead of the nine-branch grammar:
// the branches there differ only in where the "::" compression lands and
// how many h16 groups remain on either side, which (bytesConsumed,
// doubleColonSeen) captures just as precisely.
//
// The embedded-IPv4 suffix is attempted exactly when sixteen bytes must
// still be filled by it alone: either twelve bytes are already counted (so
// four more closes the address), or "::" was already seen and the
// remaining groups may be however many are needed up to the cap.
func isIPv6Address(input []byte) bool {
	idx := 0
	bytesCount := 0
	doubleColonSeen := false

	for idx < len(input) {
		lastWasColon := false
		for {
			n, ok := lookColon(input[idx:])
			if !ok {
				break
			}
			if lastWasColon {
				if doubleColonSeen {
					return false
				}
				doubleColonSeen = true
				bytesCount += 2
			}
			lastWasColon = true
			idx += n
		}

		if lastWasColon || idx == 0 {
			if bytesCount == ipv6BytesBeforeTrailingIPv4 || doubleColonSeen {
				if n, ok := lookIPv4Address(input[idx:]); ok {
					bytesCount += 4
					idx += n
					break
				}
			}
			if n, ok := lookH16(input[idx:]); ok {
				bytesCount += 2
				idx += n
				continue
			}
		}

		break
	}

	if idx != len(input) {
		return false
	}
	return bytesCount == ipv6AddressBytes || (doubleColonSeen && bytesCount <= ipv6BytesBeforeTrailingIPv4)
}

// isIPvFuture always rejects. IPvFuture hosts are not supported; see the
// package documentation.
func isIPvFuture(_ []byte) bool {
	return false
}
