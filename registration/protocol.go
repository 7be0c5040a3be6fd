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

package registration

import "github.com/lholmquist/keycloak-client-registration/registration/transport"

// Result is the parsed response body extended with response metadata under
// the headers, statusCode, and statusMessage keys.
type Result = transport.Result

// StatusError reports an HTTP status of 400 or above from the registration
// endpoint.
type StatusError = transport.StatusError

// ClientRepresentation is the open-ended mapping describing a registered
// client. Its shape depends on the provider dialect; it is passed through
// verbatim and never validated.
type ClientRepresentation map[string]any
