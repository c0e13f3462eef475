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

package codetag

// ConfigError is the error type returned by New when the mnemonic pattern
// cannot be compiled. It is the only error this package produces: Find
// itself never fails, it only reports absence.
type ConfigError struct {
	// Message describes what went wrong while building the finder.
	Message string
	// Err is the underlying error from the regex engine, if any.
	Err error
}

// Error returns the error message.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newConfigError creates a new ConfigError wrapping the original error.
// It returns nil if the input error is nil.
func newConfigError(message string, err error) *ConfigError {
	if err == nil {
		return nil
	}
	return &ConfigError{Message: message, Err: err}
}
