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

	"golang.org/x/net/idna"

	"github.com/go-squeeze/squeeze/charclass"
)

const (
	// ipLiteralLookahead bounds the scan for the closing "]" of an
	// IP-literal host.
	ipLiteralLookahead = 64
	// hostnameMaxLength bounds the total length of a reg-name host.
	hostnameMaxLength = 253
	// labelMaxLength bounds each dot-separated label of a reg-name host.
	labelMaxLength = 62
)

// lookHost matches host = IP-literal / IPv4address / reg-name, trying each
// alternative in order and returning the first success. An empty reg-name
// (length 0) is accepted here; scheme policy filters it out later.
func lookHost(input []byte) (int, bool) {
	if n, ok := lookIPLiteral(input); ok {
		return n, true
	}
	if n, ok := lookIPv4Address(input); ok {
		return n, true
	}
	return lookHostname(input), true
}

// lookIPLiteral matches IP-literal = "[" ( IPv6address / IPvFuture ) "]".
// It scans up to ipLiteralLookahead bytes ahead for the matching "]",
// verifies the enclosed slice is a valid IPv6address (IPvFuture is
// stubbed to always reject, see isIPvFuture), and consumes through "]".
func lookIPLiteral(input []byte) (int, bool) {
	idx, ok := lookLeftBracket(input)
	if !ok {
		return 0, false
	}
	window := input[idx:]
	if len(window) > ipLiteralLookahead {
		window = window[:ipLiteralLookahead]
	}
	rel := bytes.IndexByte(window, ']')
	if rel < 0 {
		return 0, false
	}
	end := idx + rel
	enclosed := input[idx:end]
	if isIPv6Address(enclosed) || isIPvFuture(enclosed) {
		return end + 1, true
	}
	return 0, false
}

// lookHostname matches a DNS-style label sequence: each label starts with
// ALPHA / DIGIT / "_", continues with ALPHA / DIGIT / "_" / "-" up to
// labelMaxLength bytes, labels are separated by ".", and the whole host is
// capped at hostnameMaxLength bytes. It always succeeds, possibly
// consuming zero bytes (an empty hostname).
//
// Permitting "_" in labels is intentional leniency: DNS forbids it, but
// it is common in real-world URLs this finder is expected to locate.
func lookHostname(input []byte) int {
	if len(input) > hostnameMaxLength {
		input = input[:hostnameMaxLength]
	}
	idx := 0
	for idx < len(input) && idx < hostnameMaxLength {
		if idx > 0 {
			n, ok := lookDot(input[idx:])
			if !ok {
				break
			}
			idx += n
		}
		n, ok := lookLabel(input[idx:])
		if !ok {
			break
		}
		idx += n
	}
	return idx
}

// lookLabel matches one hostname label. An ASCII label starts with
// ALPHA / DIGIT / "_" and continues with ALPHA / DIGIT / "_" / "-". When
// the run includes non-ASCII bytes, the whole candidate label is handed to
// idna.ToASCII to decide whether it is a valid internationalized label
// (an already-encoded "xn--" ACE form is plain ASCII and needs no such
// check). The label is only accepted or rejected, never
// rewritten: a matched IDN label keeps its original bytes in the returned
// range.
func lookLabel(input []byte) (int, bool) {
	idx := 0
	nonASCII := false
	for idx < len(input) && idx < labelMaxLength {
		c := input[idx]
		if c >= 0x80 {
			nonASCII = true
			idx++
			continue
		}
		if charclass.IsAlpha(c) || charclass.IsDigit(c) || c == '_' || (idx > 0 && c == '-') {
			idx++
			continue
		}
		break
	}
	if idx == 0 {
		return 0, false
	}
	if nonASCII {
		if _, err := idna.ToASCII(string(input[:idx])); err != nil {
			return 0, false
		}
	}
	return idx, true
}
