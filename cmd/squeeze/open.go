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

package main

import (
	"errors"
	"os/exec"
	"runtime"
)

// openViewer hands arg to the platform's viewer. Only macOS is supported;
// elsewhere `... | squeeze ... | xargs xdg-open` can serve as a workaround.
func openViewer(arg string) error {
	if runtime.GOOS != "darwin" {
		return errors.New("the --open flag is not available on " + runtime.GOOS)
	}
	return exec.Command("open", arg).Start()
}
