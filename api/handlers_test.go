package api

import (
	"net/http"
	"testing"

	"github.com/brettwhite-git/suiteprompt/internal/catalog"
)

func TestHealth(t *testing.T) {
	s := newTestServer(t, &fakeSubmitter{})

	rec := get(s, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Status  string `json:"status"`
		Prompts int    `json:"prompts"`
		Skills  int    `json:"skills"`
	}
	decodeBody(t, rec, &body)
	if body.Status != "ok" {
		t.Fatalf("status field: got %q", body.Status)
	}
	if body.Prompts != 2 || body.Skills != 1 {
		t.Fatalf("counts: got %d/%d want 2/1", body.Prompts, body.Skills)
	}
}

func TestListPrompts(t *testing.T) {
	s := newTestServer(t, &fakeSubmitter{})

	rec := get(s, "/api/prompts")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusOK)
	}

	var prompts []catalog.Prompt
	decodeBody(t, rec, &prompts)
	if len(prompts) != 2 {
		t.Fatalf("prompts: got %d want 2", len(prompts))
	}
}

func TestListPromptsFiltered(t *testing.T) {
	s := newTestServer(t, &fakeSubmitter{})

	rec := get(s, "/api/prompts?businessArea=sales&format=general")
	var prompts []catalog.Prompt
	decodeBody(t, rec, &prompts)
	if len(prompts) != 1 || prompts[0].ID != "p2" {
		t.Fatalf("filtered prompts: got %+v", prompts)
	}

	rec = get(s, "/api/prompts?search=CLOSE")
	decodeBody(t, rec, &prompts)
	if len(prompts) != 1 || prompts[0].ID != "p1" {
		t.Fatalf("search: got %+v", prompts)
	}

	rec = get(s, "/api/prompts?tags=pipeline,missing")
	decodeBody(t, rec, &prompts)
	if len(prompts) != 1 || prompts[0].ID != "p2" {
		t.Fatalf("tags: got %+v", prompts)
	}

	rec = get(s, "/api/prompts?minRating=4.5")
	decodeBody(t, rec, &prompts)
	if len(prompts) != 1 || prompts[0].ID != "p1" {
		t.Fatalf("minRating: got %+v", prompts)
	}
}

func TestListPromptsSorted(t *testing.T) {
	s := newTestServer(t, &fakeSubmitter{})

	rec := get(s, "/api/prompts?sortBy=popularity")
	var prompts []catalog.Prompt
	decodeBody(t, rec, &prompts)
	if len(prompts) != 2 || prompts[0].ID != "p2" {
		t.Fatalf("popularity sort: got %+v", prompts)
	}

	rec = get(s, "/api/prompts?sortBy=rating")
	decodeBody(t, rec, &prompts)
	if prompts[0].ID != "p1" {
		t.Fatalf("rating sort: got %+v", prompts)
	}
}

func TestListPromptsBadQuery(t *testing.T) {
	s := newTestServer(t, &fakeSubmitter{})

	for _, path := range []string{
		"/api/prompts?minRating=abc",
		"/api/prompts?minRating=6",
		"/api/prompts?sortBy=alphabetical",
	} {
		if rec := get(s, path); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: got %d want %d", path, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestGetPrompt(t *testing.T) {
	s := newTestServer(t, &fakeSubmitter{})

	rec := get(s, "/api/prompts/p1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusOK)
	}
	var p catalog.Prompt
	decodeBody(t, rec, &p)
	if p.Title != "Monthly Close Review" {
		t.Fatalf("title: got %q", p.Title)
	}

	if rec := get(s, "/api/prompts/missing"); rec.Code != http.StatusNotFound {
		t.Fatalf("missing prompt: got %d want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRelatedPrompts(t *testing.T) {
	s := newTestServer(t, &fakeSubmitter{})

	rec := get(s, "/api/prompts/p1/related")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusOK)
	}
	var related []catalog.Prompt
	decodeBody(t, rec, &related)
	// p2 shares the "general" format.
	if len(related) != 1 || related[0].ID != "p2" {
		t.Fatalf("related: got %+v", related)
	}

	if rec := get(s, "/api/prompts/missing/related"); rec.Code != http.StatusNotFound {
		t.Fatalf("missing seed: got %d want %d", rec.Code, http.StatusNotFound)
	}
	if rec := get(s, "/api/prompts/p1/related?limit=0"); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad limit: got %d want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSkillsEndpoints(t *testing.T) {
	s := newTestServer(t, &fakeSubmitter{})

	rec := get(s, "/api/skills")
	var skills []catalog.Skill
	decodeBody(t, rec, &skills)
	if len(skills) != 1 || skills[0].ID != "s1" {
		t.Fatalf("skills: got %+v", skills)
	}

	if rec := get(s, "/api/skills/s1"); rec.Code != http.StatusOK {
		t.Fatalf("get skill: got %d", rec.Code)
	}
	if rec := get(s, "/api/skills/missing"); rec.Code != http.StatusNotFound {
		t.Fatalf("missing skill: got %d", rec.Code)
	}
	if rec := get(s, "/api/skills/s1/related"); rec.Code != http.StatusOK {
		t.Fatalf("related skills: got %d", rec.Code)
	}
}

func TestBusinessAreas(t *testing.T) {
	s := newTestServer(t, &fakeSubmitter{})

	rec := get(s, "/api/business-areas")
	var areas []string
	decodeBody(t, rec, &areas)
	if len(areas) != 2 || areas[0] != "accounting" || areas[1] != "sales" {
		t.Fatalf("prompt areas: got %v", areas)
	}

	rec = get(s, "/api/business-areas?kind=skills")
	decodeBody(t, rec, &areas)
	if len(areas) != 1 || areas[0] != "development" {
		t.Fatalf("skill areas: got %v", areas)
	}

	if rec := get(s, "/api/business-areas?kind=everything"); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad kind: got %d", rec.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t, &fakeSubmitter{})

	rec := get(s, "/api/health")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID header")
	}
}

func TestUnknownAPIPathIs404(t *testing.T) {
	s := newTestServer(t, &fakeSubmitter{})

	if rec := get(s, "/api/nope"); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown api path: got %d want %d", rec.Code, http.StatusNotFound)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeSubmitter{})

	rec := get(s, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: got %d want %d", rec.Code, http.StatusOK)
	}
}
