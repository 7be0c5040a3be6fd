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

package resttransport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/lholmquist/keycloak-client-registration/registration/transport"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/oauth2"
)

// RestTransport implements the client-registration REST protocol: one HTTP
// call per operation, JSON request and response bodies, bearer credential on
// every request.
type RestTransport struct {
	httpClient *http.Client
	logger     *zap.Logger
	sessionID  string
}

// Ensure that RestTransport implements the Transport interface.
var _ transport.Transport = &RestTransport{}

// Option configures a RestTransport.
type Option func(*RestTransport)

// WithLogger replaces the diagnostic logger used when a request fails before
// a response completes.
func WithLogger(logger *zap.Logger) Option {
	return func(t *RestTransport) {
		t.logger = logger
	}
}

// New creates a RestTransport backed by the given HTTP client. A nil client
// falls back to http.DefaultClient; pooling and deadlines belong to the
// supplied client, not to this layer.
func New(client *http.Client, opts ...Option) *RestTransport {
	if client == nil {
		client = http.DefaultClient
	}
	t := &RestTransport{
		httpClient: client,
		sessionID:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = defaultLogger()
	}
	return t
}

// defaultLogger writes JSON diagnostics to stderr. Errors carry a stack
// trace.
func defaultLogger() *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(zapcore.Lock(os.Stderr)),
		zapcore.ErrorLevel,
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// Register creates a new client registration with a POST to the endpoint.
func (t *RestTransport) Register(ctx context.Context, endpoint string, credential oauth2.TokenSource, representation map[string]any) (transport.Result, error) {
	return t.roundTrip(ctx, http.MethodPost, joinURI(endpoint), credential, representation)
}

// Fetch retrieves an existing registration with a GET to endpoint/clientID.
func (t *RestTransport) Fetch(ctx context.Context, endpoint, clientID string, credential oauth2.TokenSource) (transport.Result, error) {
	return t.roundTrip(ctx, http.MethodGet, joinURI(endpoint, clientID), credential, nil)
}

// Update replaces an existing registration with a PUT to endpoint/clientID.
func (t *RestTransport) Update(ctx context.Context, endpoint, clientID string, credential oauth2.TokenSource, representation map[string]any) (transport.Result, error) {
	return t.roundTrip(ctx, http.MethodPut, joinURI(endpoint, clientID), credential, representation)
}

// Delete removes an existing registration with a DELETE to endpoint/clientID.
func (t *RestTransport) Delete(ctx context.Context, endpoint, clientID string, credential oauth2.TokenSource) (transport.Result, error) {
	return t.roundTrip(ctx, http.MethodDelete, joinURI(endpoint, clientID), credential, nil)
}

// joinURI joins URI segments with literal separators. Segments are the
// caller's responsibility: no encoding, no normalization, no trailing-slash
// handling. A malformed URI surfaces as a request-construction error, never
// earlier.
func joinURI(segments ...string) string {
	return strings.Join(segments, "/")
}

// roundTrip issues one request and interprets the response. A failure before
// a response completes is returned to the caller untouched; the log line is
// diagnostics only and does not alter the error.
func (t *RestTransport) roundTrip(ctx context.Context, method, uri string, credential oauth2.TokenSource, body map[string]any) (transport.Result, error) {
	req, err := t.buildRequest(ctx, method, uri, credential, body)
	if err != nil {
		return nil, err
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logTransportFailure(method, uri, err)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.logTransportFailure(method, uri, err)
		return nil, err
	}

	return interpret(resp, raw)
}

// buildRequest composes the request descriptor: the joined URI, JSON content
// negotiation, and the bearer credential. The access token is never
// validated here.
func (t *RestTransport) buildRequest(ctx context.Context, method, uri string, credential oauth2.TokenSource, body map[string]any) (*http.Request, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal client representation: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request to %s: %w", uri, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if credential != nil {
		token, err := credential.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve bearer credential: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	}

	return req, nil
}

// interpret classifies the completed response.
//
// Status 400 and above yields a StatusError carrying only the status message.
// Below 400, the body parses as JSON (204 short-circuits to an empty
// mapping); a body that is not valid JSON surfaces as the raw decode error.
// The parsed mapping is then extended with response metadata, overwriting
// same-named keys from the body.
func interpret(resp *http.Response, body []byte) (transport.Result, error) {
	if resp.StatusCode >= 400 {
		return nil, &transport.StatusError{
			StatusCode: resp.StatusCode,
			Message:    statusMessage(resp),
		}
	}

	result := transport.Result{}
	if resp.StatusCode != http.StatusNoContent {
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, err
		}
		if result == nil {
			// A literal JSON null decodes to a nil map.
			result = transport.Result{}
		}
	}

	result[transport.HeadersKey] = flattenHeaders(resp.Header)
	result[transport.StatusCodeKey] = resp.StatusCode
	result[transport.StatusMessageKey] = statusMessage(resp)
	return result, nil
}

// statusMessage extracts the reason phrase from the response status line,
// falling back to the standard text for the code.
func statusMessage(resp *http.Response) string {
	if msg, ok := strings.CutPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "); ok && msg != "" {
		return msg
	}
	return http.StatusText(resp.StatusCode)
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	flat := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			flat[k] = v[0]
		}
	}
	return flat
}

func (t *RestTransport) logTransportFailure(method, uri string, err error) {
	t.logger.Error("registration request failed",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.String("session_id", t.sessionID),
		zap.Error(err),
	)
}
