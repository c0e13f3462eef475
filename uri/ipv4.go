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

// lookIPv4Address matches
// IPv4address = dec-octet "." dec-octet "." dec-octet "." dec-octet.
func lookIPv4Address(input []byte) (int, bool) {
	idx := 0
	for i := 0; i < 4; i++ {
		if i > 0 {
			n, ok := lookDot(input[idx:])
			if !ok {
				return 0, false
			}
			idx += n
		}
		n, ok := lookDecOctet(input[idx:])
		if !ok {
			return 0, false
		}
		idx += n
	}
	return idx, true
}

// lookDecOctet matches dec-octet, trying the five disambiguated forms
// longest-first so that e.g. "250" is recognized as a single octet rather
// than "25" followed by a stray "0":
//
//	"25" %x30-35           ; 250-255
//	"2" %x30-34 DIGIT      ; 200-249
//	"1" DIGIT DIGIT        ; 100-199
//	%x31-39 DIGIT          ; 10-99
//	DIGIT                  ; 0-9
func lookDecOctet(input []byte) (int, bool) {
	if len(input) >= 3 && input[0] == '2' && input[1] == '5' && charclass.IsDigit0To5(input[2]) {
		return 3, true
	}
	if len(input) >= 3 && input[0] == '2' && charclass.IsDigit0To4(input[1]) && charclass.IsDigit(input[2]) {
		return 3, true
	}
	if len(input) >= 3 && input[0] == '1' && charclass.IsDigit(input[1]) && charclass.IsDigit(input[2]) {
		return 3, true
	}
	if len(input) >= 2 && charclass.IsDigit1To9(input[0]) && charclass.IsDigit(input[1]) {
		return 2, true
	}
	if len(input) >= 1 && charclass.IsDigit(input[0]) {
		return 1, true
	}
	return 0, false
}
