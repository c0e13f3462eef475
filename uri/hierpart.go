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

// lookHierPart matches hier-part, trying its alternatives in order:
//
//	hier-part = "//" authority path-abempty
//	          / path-absolute
//	          / path-rootless
//	          / path-empty
//
// When the scheme policy disallows an empty host, only the authority form
// is admissible: a scheme like "http" followed by "/x" or "x" instead of
// "//host" is rejected outright, so that "http:/x" and "http:x" are not
// recognized as URIs.
func lookHierPart(input []byte, strict bool, policy policyFlags) (int, bool) {
	// "//" authority path-abempty
	if idx, ok := lookSlashSlash(input); ok {
		if n, ok := lookAuthority(input[idx:], strict, policy); ok {
			idx += n
			idx += lookPathAbempty(input[idx:], strict)
			return idx, true
		}
	}

	if policy.disallowsEmptyHost() {
		return 0, false
	}

	// "/" [ segment-nz path-abempty ]
	if idx, ok := lookSlash(input); ok {
		if n, ok := lookSegmentNz(input[idx:], strict); ok {
			idx += n
			idx += lookPathAbempty(input[idx:], strict)
		}
		return idx, true
	}

	// segment-nz path-abempty
	if idx, ok := lookSegmentNz(input, strict); ok {
		idx += lookPathAbempty(input[idx:], strict)
		return idx, true
	}

	// path-empty
	return 0, true
}
