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

import "testing"

func TestFindScheme(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{name: "plain scheme", input: "http", want: 0, wantOK: true},
		{name: "scheme with digits", input: "rtsp2", want: 0, wantOK: true},
		{name: "scheme with plus", input: "svn+ssh", want: 0, wantOK: true},
		{name: "preceded by text", input: "see http", want: 4, wantOK: true},
		{name: "preceded by paren", input: "(http", want: 1, wantOK: true},
		// The run ends at the colon, so only its tail is inspected: a
		// digit prefix is skipped and the leftmost ALPHA wins.
		{name: "digit prefix", input: "1http", want: 1, wantOK: true},
		{name: "digits only", input: "12", want: 0, wantOK: false},
		{name: "symbols only", input: "+-.", want: 0, wantOK: false},
		{name: "empty", input: "", want: 0, wantOK: false},
		{name: "stops at non-scheme byte", input: "a/b", want: 2, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := findScheme([]byte(tt.input))
			if idx != tt.want || ok != tt.wantOK {
				t.Errorf("findScheme(%q) = (%d, %t), want (%d, %t)", tt.input, idx, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSchemeSet(t *testing.T) {
	s := NewSchemeSet("HTTP", "https")
	if s.Empty() {
		t.Fatal("set with two members reported Empty")
	}
	for _, name := range []string{"http", "HTTP", "Http", "https"} {
		if !s.Contains(name) {
			t.Errorf("Contains(%q) = false, want true", name)
		}
	}
	if s.Contains("ftp") {
		t.Error("Contains(ftp) = true, want false")
	}

	var empty *SchemeSet
	if !empty.Empty() {
		t.Error("nil SchemeSet should be Empty")
	}
	if empty.Contains("http") {
		t.Error("nil SchemeSet should contain nothing")
	}
}

func TestPolicyFor(t *testing.T) {
	for _, scheme := range []string{"http", "https", "ftp", "HTTP"} {
		if !policyFor(scheme).disallowsEmptyHost() {
			t.Errorf("policyFor(%q) should disallow an empty host", scheme)
		}
	}
	for _, scheme := range []string{"file", "mailto", "urn", "foobar"} {
		if policyFor(scheme).disallowsEmptyHost() {
			t.Errorf("policyFor(%q) should have the zero policy", scheme)
		}
	}
}
