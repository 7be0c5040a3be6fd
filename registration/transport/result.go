// Copyright 2026 The keycloak-client-registration Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transport

// Keys under which response metadata is merged into a Result. The merge
// overwrites same-named keys in the parsed body; callers may depend on the
// override.
const (
	HeadersKey       = "headers"
	StatusCodeKey    = "statusCode"
	StatusMessageKey = "statusMessage"
)

// Result is the parsed response body extended with response metadata. It
// exists only for the lifetime of one call; the library retains no copy.
type Result map[string]any

// Headers returns the response header mapping merged into the result.
func (r Result) Headers() map[string]string {
	h, _ := r[HeadersKey].(map[string]string)
	return h
}

// StatusCode returns the HTTP status code merged into the result.
func (r Result) StatusCode() int {
	c, _ := r[StatusCodeKey].(int)
	return c
}

// StatusMessage returns the HTTP status message merged into the result.
func (r Result) StatusMessage() string {
	m, _ := r[StatusMessageKey].(string)
	return m
}
