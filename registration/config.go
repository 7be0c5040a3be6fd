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
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envOptions mirrors Options for environment unmarshalling.
type envOptions struct {
	Endpoint    string `mapstructure:"registration_endpoint"`
	AccessToken string `mapstructure:"registration_access_token"`
	Provider    string `mapstructure:"registration_provider"`
}

// OptionsFromEnv builds call options from REGISTRATION_ENDPOINT,
// REGISTRATION_ACCESS_TOKEN, and REGISTRATION_PROVIDER. A .env file in the
// working directory is honored when present. The provider must belong to the
// closed dialect set; endpoint and token are deliberately not validated here,
// matching the call-time contract.
func OptionsFromEnv() (Options, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("registration_endpoint", "")
	v.SetDefault("registration_access_token", "")
	v.SetDefault("registration_provider", string(ProviderDefault))
	v.AutomaticEnv()

	var env envOptions
	if err := v.Unmarshal(&env); err != nil {
		return Options{}, fmt.Errorf("unmarshal registration options: %w", err)
	}

	provider, err := ParseProvider(env.Provider)
	if err != nil {
		return Options{}, err
	}

	return Options{
		Endpoint:    env.Endpoint,
		AccessToken: env.AccessToken,
		Provider:    provider,
	}, nil
}
