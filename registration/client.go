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

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lholmquist/keycloak-client-registration/registration/transport"
	"github.com/lholmquist/keycloak-client-registration/registration/transport/resttransport"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// RegistrationClient issues client-registration calls. It owns only ambient
// collaborators (HTTP client, transport, diagnostics); credentials and
// endpoint arrive fresh with every call's Options.
type RegistrationClient struct {
	httpClient *http.Client
	transport  transport.Transport
	tokens     oauth2.TokenSource
	logger     *zap.Logger
}

// NewRegistrationClient creates a new, immutable RegistrationClient.
func NewRegistrationClient(opts ...ClientOption) (*RegistrationClient, error) {
	rc := &RegistrationClient{
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		if opt == nil {
			return nil, fmt.Errorf("NewRegistrationClient: received a nil ClientOption")
		}
		if err := opt(rc); err != nil {
			return nil, err
		}
	}

	if rc.transport == nil {
		var topts []resttransport.Option
		if rc.logger != nil {
			topts = append(topts, resttransport.WithLogger(rc.logger))
		}
		rc.transport = resttransport.New(rc.httpClient, topts...)
	}

	return rc, nil
}

// Close closes the underlying client session's idle connections.
func (rc *RegistrationClient) Close() {
	if tr, ok := rc.httpClient.Transport.(*http.Transport); ok {
		tr.CloseIdleConnections()
	}
}

// Create registers a new client and returns the server's representation of
// it, decorated with response metadata. A nil representation registers an
// empty one.
func (rc *RegistrationClient) Create(ctx context.Context, opts Options, client ClientRepresentation) (Result, error) {
	opts.Provider = opts.Provider.orDefault()
	if client == nil {
		client = ClientRepresentation{}
	}
	return rc.transport.Register(ctx, opts.Endpoint, rc.credential(opts), client)
}

// Get fetches the registration identified by clientID.
func (rc *RegistrationClient) Get(ctx context.Context, opts Options, clientID string) (Result, error) {
	opts.Provider = opts.Provider.orDefault()
	return rc.transport.Fetch(ctx, opts.Endpoint, clientID, rc.credential(opts))
}

// Remove deletes the registration identified by clientID.
func (rc *RegistrationClient) Remove(ctx context.Context, opts Options, clientID string) (Result, error) {
	opts.Provider = opts.Provider.orDefault()
	return rc.transport.Delete(ctx, opts.Endpoint, clientID, rc.credential(opts))
}

// Update replaces a registration with the full representation given. The
// client identifier is read from the representation's clientId key; a missing
// identifier is not a local error and surfaces, if at all, from the server.
func (rc *RegistrationClient) Update(ctx context.Context, opts Options, client ClientRepresentation) (Result, error) {
	opts.Provider = opts.Provider.orDefault()
	clientID, _ := client["clientId"].(string)
	return rc.transport.Update(ctx, opts.Endpoint, clientID, rc.credential(opts), client)
}

// credential wraps the call's access token into a static token source,
// falling back to the client-level source when the options carry none.
func (rc *RegistrationClient) credential(opts Options) oauth2.TokenSource {
	if opts.AccessToken == "" && rc.tokens != nil {
		return rc.tokens
	}
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.AccessToken})
}

// defaultClient backs the package-level operations, in the manner of
// http.DefaultClient.
var defaultClient = &RegistrationClient{
	httpClient: http.DefaultClient,
	transport:  resttransport.New(http.DefaultClient),
}

// Create registers a new client using the package-level default client.
func Create(ctx context.Context, opts Options, client ClientRepresentation) (Result, error) {
	return defaultClient.Create(ctx, opts, client)
}

// Get fetches a registration using the package-level default client.
func Get(ctx context.Context, opts Options, clientID string) (Result, error) {
	return defaultClient.Get(ctx, opts, clientID)
}

// Remove deletes a registration using the package-level default client.
func Remove(ctx context.Context, opts Options, clientID string) (Result, error) {
	return defaultClient.Remove(ctx, opts, clientID)
}

// Update replaces a registration using the package-level default client.
func Update(ctx context.Context, opts Options, client ClientRepresentation) (Result, error) {
	return defaultClient.Update(ctx, opts, client)
}
