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

import (
	"context"

	"golang.org/x/oauth2"
)

// Transport issues client-registration calls against a registration endpoint.
// Every method performs exactly one outbound request and yields exactly one
// Result or one error, never both.
type Transport interface {
	// Register creates a new client registration.
	Register(ctx context.Context, endpoint string, credential oauth2.TokenSource, representation map[string]any) (Result, error)

	// Fetch retrieves the registration identified by clientID.
	Fetch(ctx context.Context, endpoint, clientID string, credential oauth2.TokenSource) (Result, error)

	// Update replaces the registration identified by clientID.
	Update(ctx context.Context, endpoint, clientID string, credential oauth2.TokenSource, representation map[string]any) (Result, error)

	// Delete removes the registration identified by clientID.
	Delete(ctx context.Context, endpoint, clientID string, credential oauth2.TokenSource) (Result, error)
}
