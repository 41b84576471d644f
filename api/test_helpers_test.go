package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/brettwhite-git/suiteprompt/internal/catalog"
	"github.com/brettwhite-git/suiteprompt/internal/config"
	"github.com/brettwhite-git/suiteprompt/internal/progress"
	"github.com/brettwhite-git/suiteprompt/internal/submission"
	"github.com/brettwhite-git/suiteprompt/internal/taxonomy"
)

type fakeSubmitter struct {
	SubmitFunc func(ctx context.Context, req *submission.Request) (*submission.Result, error)
}

func (f *fakeSubmitter) Submit(ctx context.Context, req *submission.Request) (*submission.Result, error) {
	if f.SubmitFunc != nil {
		return f.SubmitFunc(ctx, req)
	}
	return &submission.Result{
		ID:       "submitted-1754049600000-abc12",
		PRURL:    "https://github.com/o/r/pull/7",
		PRNumber: 7,
	}, nil
}

func testCatalog() *catalog.Catalog {
	return catalog.New(catalog.Data{
		Prompts: []catalog.Prompt{
			{
				Item: catalog.Item{
					ID: "p1", Title: "Monthly Close Review", Description: "Close checklist helper",
					Author: catalog.Author{ID: "a1", Name: "Brett"},
					Rating: catalog.Rating{Average: 4.7, Count: 30}, Downloads: 400,
					Tags: []string{"close", "finance"}, CreatedAt: "2025-05-12T09:30:00Z",
				},
				Format: "general", BusinessArea: "accounting", TargetPlatform: "text-enhance",
			},
			{
				Item: catalog.Item{
					ID: "p2", Title: "Pipeline Health", Description: "Summarizes open deals",
					Author: catalog.Author{ID: "a2", Name: "Maya"},
					Rating: catalog.Rating{Average: 4.4, Count: 18}, Downloads: 650,
					Tags: []string{"pipeline"}, CreatedAt: "2025-06-20T11:15:00Z",
				},
				Format: "general", BusinessArea: "sales", TargetPlatform: "advisor",
			},
		},
		Skills: []catalog.Skill{
			{
				Item: catalog.Item{
					ID: "s1", Title: "SuiteScript Code Review", Description: "Reviews SuiteScript files",
					Author: catalog.Author{ID: "a1", Name: "Brett"},
					Rating: catalog.Rating{Average: 4.8, Count: 44}, Downloads: 980,
					Tags: []string{"review"}, CreatedAt: "2025-03-15T12:00:00Z",
				},
				Format: "skill", BusinessArea: "development",
			},
		},
	})
}

func newTestServer(t *testing.T, submitter Submitter) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("SUITEPROMPT_DISABLE_AUTH", "true")
	t.Setenv("SUITEPROMPT_API_KEY", "")

	prog, err := progress.Open(filepath.Join(t.TempDir(), "progress.json"))
	if err != nil {
		t.Fatalf("progress.Open: %v", err)
	}

	s, err := NewServer(&config.Config{}, testCatalog(), taxonomy.Default(), submitter, prog)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func doRequest(s *Server, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
}

func get(s *Server, path string) *httptest.ResponseRecorder {
	return doRequest(s, http.MethodGet, path, nil)
}

func newAuthedRequest(t *testing.T, key string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(submitPayload()); err != nil {
		t.Fatalf("encode payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/prompts/submit", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", key)
	return req, httptest.NewRecorder()
}
