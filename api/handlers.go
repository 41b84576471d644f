package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brettwhite-git/suiteprompt/internal/catalog"
	"github.com/brettwhite-git/suiteprompt/internal/metrics"
)

func (s *Server) handleHealth(c *gin.Context) {
	prompts, skills := s.catalog.Len()
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"time":    time.Now().UTC().Format(time.RFC3339),
		"prompts": prompts,
		"skills":  skills,
	})
}

func (s *Server) handleListPrompts(c *gin.Context) {
	if s == nil || s.catalog == nil {
		respondError(c, http.StatusInternalServerError, errors.New("server not initialized"))
		return
	}

	filters, err := parseFilters(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	metrics.RecordCatalogRequest("prompts")
	c.JSON(http.StatusOK, s.catalog.Prompts(filters))
}

func (s *Server) handleGetPrompt(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, http.StatusBadRequest, errors.New("missing prompt id"))
		return
	}

	p, ok := s.catalog.PromptByID(id)
	if !ok {
		respondError(c, http.StatusNotFound, fmt.Errorf("prompt %q not found", id))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleRelatedPrompts(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, http.StatusBadRequest, errors.New("missing prompt id"))
		return
	}
	if _, ok := s.catalog.PromptByID(id); !ok {
		respondError(c, http.StatusNotFound, fmt.Errorf("prompt %q not found", id))
		return
	}

	limit, err := parseLimitParam(c.Query("limit"), 6)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	c.JSON(http.StatusOK, s.catalog.RelatedPrompts(id, limit))
}

func (s *Server) handleListSkills(c *gin.Context) {
	if s == nil || s.catalog == nil {
		respondError(c, http.StatusInternalServerError, errors.New("server not initialized"))
		return
	}

	filters, err := parseFilters(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	metrics.RecordCatalogRequest("skills")
	c.JSON(http.StatusOK, s.catalog.Skills(filters))
}

func (s *Server) handleGetSkill(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, http.StatusBadRequest, errors.New("missing skill id"))
		return
	}

	sk, ok := s.catalog.SkillByID(id)
	if !ok {
		respondError(c, http.StatusNotFound, fmt.Errorf("skill %q not found", id))
		return
	}
	c.JSON(http.StatusOK, sk)
}

func (s *Server) handleRelatedSkills(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, http.StatusBadRequest, errors.New("missing skill id"))
		return
	}
	if _, ok := s.catalog.SkillByID(id); !ok {
		respondError(c, http.StatusNotFound, fmt.Errorf("skill %q not found", id))
		return
	}

	limit, err := parseLimitParam(c.Query("limit"), 6)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	c.JSON(http.StatusOK, s.catalog.RelatedSkills(id, limit))
}

func (s *Server) handleBusinessAreas(c *gin.Context) {
	kind := strings.TrimSpace(c.Query("kind"))
	switch kind {
	case "", "prompts":
		c.JSON(http.StatusOK, catalog.BusinessAreasFromPrompts(s.catalog.Prompts(catalog.Filters{})))
	case "skills":
		c.JSON(http.StatusOK, catalog.BusinessAreasFromSkills(s.catalog.Skills(catalog.Filters{})))
	default:
		respondError(c, http.StatusBadRequest, fmt.Errorf("invalid kind %q (expected prompts or skills)", kind))
	}
}

func parseFilters(c *gin.Context) (catalog.Filters, error) {
	f := catalog.Filters{
		Format:         strings.TrimSpace(c.Query("format")),
		BusinessArea:   strings.TrimSpace(c.Query("businessArea")),
		TargetPlatform: strings.TrimSpace(c.Query("targetPlatform")),
		Search:         strings.TrimSpace(c.Query("search")),
		SortBy:         strings.TrimSpace(c.Query("sortBy")),
	}

	if raw := strings.TrimSpace(c.Query("minRating")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return catalog.Filters{}, fmt.Errorf("invalid minRating %q", raw)
		}
		if v < 0 || v > 5 {
			return catalog.Filters{}, fmt.Errorf("minRating must be between 0 and 5 (got %v)", v)
		}
		f.MinRating = v
	}

	if raw := strings.TrimSpace(c.Query("tags")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if tag := strings.TrimSpace(part); tag != "" {
				f.Tags = append(f.Tags, tag)
			}
		}
	}

	switch f.SortBy {
	case "", catalog.SortPopularity, catalog.SortRating, catalog.SortNewest, catalog.SortDownloads:
	default:
		return catalog.Filters{}, fmt.Errorf("invalid sortBy %q", f.SortBy)
	}

	return f, nil
}

func parseLimitParam(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	if v <= 0 {
		return 0, fmt.Errorf("limit must be > 0")
	}
	return v, nil
}

func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		c.Status(status)
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
