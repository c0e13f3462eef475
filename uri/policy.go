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

import "strings"

// policyFlags is a small bitset of per-scheme constraints.
type policyFlags uint8

const (
	// disallowEmptyHost marks schemes whose authority must carry a
	// non-empty host, e.g. "http:///x" is rejected even though RFC 3986's
	// grammar alone would allow an empty reg-name.
	disallowEmptyHost policyFlags = 1 << iota
)

// schemePolicies is a static table of scheme-specific constraints.
// Unknown schemes default to the all-zero policy (no constraints).
var schemePolicies = map[string]policyFlags{
	"ftp":   disallowEmptyHost,
	"http":  disallowEmptyHost,
	"https": disallowEmptyHost,
}

// policyFor looks up the policy for a scheme, comparing case-insensitively.
func policyFor(scheme string) policyFlags {
	return schemePolicies[strings.ToLower(scheme)]
}

func (p policyFlags) disallowsEmptyHost() bool {
	return p&disallowEmptyHost != 0
}
