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

// Package registration is a client for the Keycloak client-registration REST
// API. It creates, fetches, updates, and removes client registrations against
// a caller-supplied endpoint, authenticating each call with an initial access
// token sent as a bearer credential.
//
// Every operation issues exactly one HTTP request and returns exactly one
// Result or one error. The library keeps no state between calls: options are
// supplied fresh on each invocation, and pooling or deadlines belong to the
// underlying *http.Client (or the caller's context), not to this layer.
package registration
