package ghrepo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o deadline reached" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

// rateLimitError builds a RateLimitError whose Error method is safe to call;
// the zero value panics on its nil embedded response.
func rateLimitError() *github.RateLimitError {
	return &github.RateLimitError{
		Response: &http.Response{
			Request:    &http.Request{Method: "GET", URL: &url.URL{Scheme: "https", Host: "api.github.com"}},
			StatusCode: http.StatusForbidden,
		},
		Message: "API rate limit exceeded",
	}
}

func TestIsRateLimit(t *testing.T) {
	assert.False(t, IsRateLimit(nil))
	assert.False(t, IsRateLimit(errors.New("boom")))

	assert.True(t, IsRateLimit(rateLimitError()))
	assert.True(t, IsRateLimit(&github.AbuseRateLimitError{}))
	assert.True(t, IsRateLimit(fmt.Errorf("ghrepo: create branch: %w", rateLimitError())))

	// Substring fallback for stringified upstream errors.
	assert.True(t, IsRateLimit(errors.New("API rate limit exceeded for installation")))
}

func TestIsTimeout(t *testing.T) {
	assert.False(t, IsTimeout(nil))
	assert.False(t, IsTimeout(errors.New("boom")))

	assert.True(t, IsTimeout(context.DeadlineExceeded))
	assert.True(t, IsTimeout(fmt.Errorf("ghrepo: commit: %w", context.DeadlineExceeded)))
	assert.True(t, IsTimeout(timeoutErr{}))
	assert.True(t, IsTimeout(errors.New("connect ETIMEDOUT 140.82.112.3:443")))
	assert.True(t, IsTimeout(errors.New("request timeout waiting for response")))
}
