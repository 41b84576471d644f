// Package captcha verifies Turnstile tokens server-to-server. Any
// non-success response, network error, or timeout counts as a failed
// verification; the pipeline never retries.
package captcha

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultEndpoint = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// Verifier checks tokens against the Turnstile siteverify endpoint.
type Verifier struct {
	secret     string
	endpoint   string
	httpClient *http.Client
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithEndpoint overrides the verification endpoint.
func WithEndpoint(endpoint string) Option {
	return func(v *Verifier) {
		if v == nil {
			return
		}
		if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
			v.endpoint = endpoint
		}
	}
}

// WithHTTPClient swaps the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(v *Verifier) {
		if v == nil || httpClient == nil {
			return
		}
		v.httpClient = httpClient
	}
}

// New constructs a Verifier. An empty secret falls back to
// TURNSTILE_SECRET_KEY.
func New(secret string, opts ...Option) *Verifier {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("TURNSTILE_SECRET_KEY"))
	}
	v := &Verifier{
		secret:     secret,
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

type verifyRequest struct {
	Secret   string `json:"secret"`
	Response string `json:"response"`
}

type verifyResponse struct {
	Success bool `json:"success"`
}

// Verify checks one token. It returns false with a nil error for a clean
// rejection and false with the underlying error when the endpoint could not
// be reached or answered garbage.
func (v *Verifier) Verify(ctx context.Context, token string) (bool, error) {
	if v == nil {
		return false, errors.New("captcha: nil verifier")
	}
	if ctx == nil {
		return false, errors.New("captcha: nil context")
	}
	if strings.TrimSpace(token) == "" {
		return false, nil
	}

	payload, err := json.Marshal(verifyRequest{Secret: v.secret, Response: token})
	if err != nil {
		return false, fmt.Errorf("captcha: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("captcha: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("captcha: verify: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("captcha: verify: unexpected status %s", resp.Status)
	}

	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("captcha: decode response: %w", err)
	}
	return out.Success, nil
}
