package ghrepo

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/google/go-github/v66/github"
)

// IsRateLimit reports whether err is a GitHub rate-limit failure. Typed
// errors are checked first; the message substring check stays as a fallback
// for wrapped or stringified errors, matching the storefront's contract.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return true
	}

	return strings.Contains(err.Error(), "rate limit")
}

// IsTimeout reports whether err is a timeout or network failure reaching the
// repository host.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "ETIMEDOUT")
}
