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

package finder

import "testing"

func TestRangeLen(t *testing.T) {
	tests := []struct {
		r    Range
		want int
	}{
		{r: Range{Start: 0, End: 0}, want: 0},
		{r: Range{Start: 0, End: 5}, want: 5},
		{r: Range{Start: 3, End: 10}, want: 7},
	}
	for _, tt := range tests {
		if got := tt.r.Len(); got != tt.want {
			t.Errorf("Range%+v.Len() = %d, want %d", tt.r, got, tt.want)
		}
	}
}
