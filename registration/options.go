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
	"net/http"

	"github.com/lholmquist/keycloak-client-registration/registration/transport"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Options carries the per-call settings for a registration operation. A fresh
// value is supplied on every call; the client keeps no configuration state
// between calls.
type Options struct {
	// Endpoint is the base URI of the registration endpoint. There is no
	// default: an absent or malformed endpoint surfaces as a transport
	// error, never a local validation error.
	Endpoint string

	// AccessToken is the initial access token sent as the bearer
	// credential. It is never validated locally.
	AccessToken string

	// Provider selects the client-representation dialect. The zero value
	// resolves to ProviderDefault.
	Provider Provider
}

// ClientOption configures a RegistrationClient at creation time.
type ClientOption func(*RegistrationClient) error

// WithHTTPClient replaces the HTTP client used for registration calls.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(rc *RegistrationClient) error {
		rc.httpClient = client
		return nil
	}
}

// WithTokenSource installs a fallback bearer credential used when a call's
// Options carry no access token. Useful for rotating credentials.
func WithTokenSource(source oauth2.TokenSource) ClientOption {
	return func(rc *RegistrationClient) error {
		rc.tokens = source
		return nil
	}
}

// WithLogger replaces the diagnostic logger used for transport failures.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(rc *RegistrationClient) error {
		rc.logger = logger
		return nil
	}
}

// WithTransport replaces the transport used to issue registration calls.
// Mostly useful for tests and custom wire protocols.
func WithTransport(tr transport.Transport) ClientOption {
	return func(rc *RegistrationClient) error {
		rc.transport = tr
		return nil
	}
}
