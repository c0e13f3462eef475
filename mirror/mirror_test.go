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

package mirror

import (
	"testing"

	"github.com/go-squeeze/squeeze/finder"
)

func TestFindMirrorsInput(t *testing.T) {
	f := New()
	if f.ID() != "mirror" {
		t.Errorf("ID() = %q, want %q", f.ID(), "mirror")
	}
	for _, input := range []string{"lorem ipsum", "x", ""} {
		r, ok := f.Find([]byte(input))
		if !ok {
			t.Fatalf("Find(%q) = false, want true", input)
		}
		if r != (finder.Range{Start: 0, End: len(input)}) {
			t.Errorf("Find(%q) = %v, want [0, %d)", input, r, len(input))
		}
	}
}
