// Package ghrepo turns an accepted submission into a reviewable pull request
// against the content repository. It wraps the GitHub REST API the same way
// the storefront wrapped Octokit: one strictly ordered branch, commit, PR,
// label sequence with no retries and no partial cleanup.
package ghrepo

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

const (
	defaultOwner      = "brettwhite-git"
	defaultRepo       = "netsuite-marketplace"
	defaultBaseBranch = "main"
)

// PullRequest identifies the created review artifact.
type PullRequest struct {
	URL    string `json:"html_url"`
	Number int    `json:"number"`
}

// Client creates submission pull requests against one content repository.
type Client struct {
	gh         *github.Client
	owner      string
	repo       string
	baseBranch string
}

// Option configures a Client.
type Option func(*Client)

// WithRepository overrides the content repository coordinates.
func WithRepository(owner, repo string) Option {
	return func(c *Client) {
		if c == nil {
			return
		}
		if owner = strings.TrimSpace(owner); owner != "" {
			c.owner = owner
		}
		if repo = strings.TrimSpace(repo); repo != "" {
			c.repo = repo
		}
	}
}

// WithBaseBranch overrides the branch submissions are reviewed against.
func WithBaseBranch(branch string) Option {
	return func(c *Client) {
		if c == nil {
			return
		}
		if branch = strings.TrimSpace(branch); branch != "" {
			c.baseBranch = branch
		}
	}
}

// WithHTTPClient swaps the underlying HTTP client. Tests point this at an
// httptest server via WithBaseURL.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if c == nil || httpClient == nil {
			return
		}
		c.gh = github.NewClient(httpClient)
	}
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if c == nil || c.gh == nil {
			return
		}
		baseURL = strings.TrimSpace(baseURL)
		if baseURL == "" {
			return
		}
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		if u, err := c.gh.BaseURL.Parse(baseURL); err == nil {
			c.gh.BaseURL = u
		}
	}
}

// NewClient constructs a Client authenticated with the given token. An empty
// token falls back to GITHUB_TOKEN; owner and repo fall back to
// GITHUB_REPO_OWNER and GITHUB_REPO_NAME.
func NewClient(token string, opts ...Option) *Client {
	token = strings.TrimSpace(token)
	if token == "" {
		token = strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
	}

	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	c := &Client{
		gh:         github.NewClient(httpClient),
		owner:      defaultOwner,
		repo:       defaultRepo,
		baseBranch: defaultBaseBranch,
	}
	if v := strings.TrimSpace(os.Getenv("GITHUB_REPO_OWNER")); v != "" {
		c.owner = v
	}
	if v := strings.TrimSpace(os.Getenv("GITHUB_REPO_NAME")); v != "" {
		c.repo = v
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}
