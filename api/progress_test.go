package api

import (
	"net/http"
	"testing"

	"github.com/brettwhite-git/suiteprompt/internal/progress"
)

func TestProgressLifecycle(t *testing.T) {
	s := newTestServer(t, &fakeSubmitter{})

	// Fresh path starts empty.
	rec := get(s, "/api/learn/progress/getting-started")
	if rec.Code != http.StatusOK {
		t.Fatalf("get progress: got %d want %d", rec.Code, http.StatusOK)
	}
	var body struct {
		PathID    string            `json:"pathId"`
		Completed []progress.Record `json:"completed"`
	}
	decodeBody(t, rec, &body)
	if body.PathID != "getting-started" || len(body.Completed) != 0 {
		t.Fatalf("initial progress: %+v", body)
	}

	// Complete two modules.
	rec = doRequest(s, http.MethodPost, "/api/learn/progress/getting-started/modules/mod-1/complete", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("complete: got %d want %d", rec.Code, http.StatusOK)
	}
	var first progress.Record
	decodeBody(t, rec, &first)
	if first.ModuleID != "mod-1" || first.CompletedAt == "" {
		t.Fatalf("record: %+v", first)
	}

	rec = doRequest(s, http.MethodPost, "/api/learn/progress/getting-started/modules/mod-2/complete", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("complete mod-2: got %d", rec.Code)
	}

	// Completing again keeps the original record.
	rec = doRequest(s, http.MethodPost, "/api/learn/progress/getting-started/modules/mod-1/complete", nil)
	var again progress.Record
	decodeBody(t, rec, &again)
	if again.CompletedAt != first.CompletedAt {
		t.Fatalf("idempotence: got %q want %q", again.CompletedAt, first.CompletedAt)
	}

	rec = get(s, "/api/learn/progress/getting-started")
	decodeBody(t, rec, &body)
	if len(body.Completed) != 2 {
		t.Fatalf("completed: got %d want 2", len(body.Completed))
	}

	// Reset wipes the path.
	rec = doRequest(s, http.MethodPost, "/api/learn/progress/getting-started/reset", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("reset: got %d want %d", rec.Code, http.StatusNoContent)
	}
	rec = get(s, "/api/learn/progress/getting-started")
	decodeBody(t, rec, &body)
	if len(body.Completed) != 0 {
		t.Fatalf("after reset: %+v", body.Completed)
	}
}
