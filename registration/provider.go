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

import "fmt"

// Provider identifies the client-representation dialect understood by the
// registration endpoint.
type Provider string

const (
	// ProviderDefault is the plain Keycloak client representation; the
	// client identifier lives under the clientId key.
	ProviderDefault Provider = "default"

	// ProviderOpenIDConnect is the OpenID Connect dynamic-registration
	// dialect, which carries the identifier under client_id.
	ProviderOpenIDConnect Provider = "openid-connect"

	// ProviderSAML2EntityDescriptor is the SAML2 entity-descriptor dialect.
	ProviderSAML2EntityDescriptor Provider = "saml2-entity-descriptor"
)

// ParseProvider converts a string into a Provider. The empty string resolves
// to ProviderDefault; anything outside the closed set is an error.
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case "", ProviderDefault:
		return ProviderDefault, nil
	case ProviderOpenIDConnect:
		return ProviderOpenIDConnect, nil
	case ProviderSAML2EntityDescriptor:
		return ProviderSAML2EntityDescriptor, nil
	}
	return "", fmt.Errorf("unknown registration provider %q", s)
}

func (p Provider) String() string {
	return string(p)
}

// orDefault resolves the zero value to ProviderDefault.
func (p Provider) orDefault() Provider {
	if p == "" {
		return ProviderDefault
	}
	return p
}
