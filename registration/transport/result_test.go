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

package transport_test

import (
	"testing"

	"github.com/lholmquist/keycloak-client-registration/registration/transport"
)

func TestResultAccessors(t *testing.T) {
	r := transport.Result{
		"clientId":                 "abc",
		transport.HeadersKey:       map[string]string{"Content-Type": "application/json"},
		transport.StatusCodeKey:    201,
		transport.StatusMessageKey: "Created",
	}

	if r.StatusCode() != 201 {
		t.Errorf("expected 201, got %d", r.StatusCode())
	}
	if r.StatusMessage() != "Created" {
		t.Errorf("expected Created, got %q", r.StatusMessage())
	}
	if r.Headers()["Content-Type"] != "application/json" {
		t.Errorf("unexpected headers: %v", r.Headers())
	}
}

func TestResultAccessors_MissingMetadata(t *testing.T) {
	r := transport.Result{"clientId": "abc"}

	if r.StatusCode() != 0 {
		t.Errorf("expected zero status code, got %d", r.StatusCode())
	}
	if r.StatusMessage() != "" {
		t.Errorf("expected empty status message, got %q", r.StatusMessage())
	}
	if r.Headers() != nil {
		t.Errorf("expected nil headers, got %v", r.Headers())
	}
}

func TestStatusError_MessageOnly(t *testing.T) {
	err := &transport.StatusError{StatusCode: 403, Message: "Forbidden"}
	if err.Error() != "Forbidden" {
		t.Errorf("Error() must be exactly the status message, got %q", err.Error())
	}
}
