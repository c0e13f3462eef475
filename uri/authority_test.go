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
	"strings"
	"testing"
)

func TestLookUserinfoAt(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{name: "user only", input: "user@host", want: 5, wantOK: true},
		{name: "user and password", input: "foobar:baz@host", want: 11, wantOK: true},
		{name: "empty userinfo", input: "@host", want: 1, wantOK: true},
		{name: "colon only", input: ":@host", want: 2, wantOK: true},
		{name: "pct-encoded", input: "f%6Fo@host", want: 6, wantOK: true},
		{name: "no at sign", input: "plainhost", want: 0, wantOK: false},
		// A slash before the "@" means the "@" belongs to the path, not
		// to userinfo.
		{name: "slash before at", input: "host/a@b", want: 0, wantOK: false},
		{name: "empty input", input: "", want: 0, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := lookUserinfoAt([]byte(tt.input), false)
			if n != tt.want || ok != tt.wantOK {
				t.Errorf("lookUserinfoAt(%q) = (%d, %t), want (%d, %t)", tt.input, n, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLookUserinfoAtLookaheadCap(t *testing.T) {
	// An "@" beyond the lookahead window is never considered.
	input := strings.Repeat("a", userinfoLookahead) + "@host"
	if n, ok := lookUserinfoAt([]byte(input), false); ok {
		t.Errorf("lookUserinfoAt past the window = (%d, true), want no match", n)
	}
	// At the edge of the window it still is.
	input = strings.Repeat("a", userinfoLookahead-1) + "@host"
	if n, ok := lookUserinfoAt([]byte(input), false); !ok || n != userinfoLookahead {
		t.Errorf("lookUserinfoAt at the window edge = (%d, %t), want (%d, true)", n, ok, userinfoLookahead)
	}
}

func TestLookColonPort(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{input: ":8080", want: 5, wantOK: true},
		{input: ":", want: 1, wantOK: true},
		{input: ":80/x", want: 3, wantOK: true},
		{input: ":80a", want: 3, wantOK: true},
		{input: "8080", want: 0, wantOK: false},
		{input: "", want: 0, wantOK: false},
	}
	for _, tt := range tests {
		n, ok := lookColonPort([]byte(tt.input))
		if n != tt.want || ok != tt.wantOK {
			t.Errorf("lookColonPort(%q) = (%d, %t), want (%d, %t)", tt.input, n, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLookAuthority(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		policy policyFlags
		want   int
		wantOK bool
	}{
		{name: "host only", input: "localhost", want: 9, wantOK: true},
		{name: "full authority", input: "user:pw@localhost:8080/x", want: 22, wantOK: true},
		{name: "ipv6 host with port", input: "[::1]:80", want: 8, wantOK: true},
		{name: "trailing empty port", input: "localhost:", want: 10, wantOK: true},
		{name: "empty host allowed", input: "/path", want: 0, wantOK: true},
		{name: "empty host disallowed", input: "/path", policy: disallowEmptyHost, want: 0, wantOK: false},
		{name: "empty input disallowed", input: "", policy: disallowEmptyHost, want: 0, wantOK: false},
		{name: "userinfo then empty host disallowed", input: "test@", policy: disallowEmptyHost, want: 0, wantOK: false},
		{name: "host with policy", input: "example.com", policy: disallowEmptyHost, want: 11, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := lookAuthority([]byte(tt.input), false, tt.policy)
			if n != tt.want || ok != tt.wantOK {
				t.Errorf("lookAuthority(%q) = (%d, %t), want (%d, %t)", tt.input, n, ok, tt.want, tt.wantOK)
			}
		})
	}
}
