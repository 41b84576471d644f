package api

import (
	"errors"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gin-gonic/gin"
)

func (s *Server) registerRoutes() error {
	if s == nil || s.router == nil {
		return nil
	}

	// Metrics stay outside the /api group and its auth.
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api")

	// Catalog reads are public; the storefront is a public site. Mutating
	// routes require the API key unless auth is explicitly disabled.
	api.GET("/health", s.handleHealth)
	api.GET("/prompts", s.handleListPrompts)
	api.GET("/prompts/:id", s.handleGetPrompt)
	api.GET("/prompts/:id/related", s.handleRelatedPrompts)
	api.GET("/skills", s.handleListSkills)
	api.GET("/skills/:id", s.handleGetSkill)
	api.GET("/skills/:id/related", s.handleRelatedSkills)
	api.GET("/business-areas", s.handleBusinessAreas)
	api.GET("/learn/progress/:path", s.handleGetProgress)

	mutating := api.Group("")
	apiKey := strings.TrimSpace(os.Getenv("SUITEPROMPT_API_KEY"))
	if apiKey != "" {
		mutating.Use(apiKeyAuthMiddleware(apiKey))
	} else if strings.EqualFold(strings.TrimSpace(os.Getenv("SUITEPROMPT_DISABLE_AUTH")), "true") {
		// Explicitly allow unauthenticated access.
	} else {
		return errors.New("api: missing auth configuration: set SUITEPROMPT_API_KEY or set SUITEPROMPT_DISABLE_AUTH=true")
	}

	mutating.POST("/prompts/submit", s.handleSubmitPrompt)
	mutating.POST("/learn/progress/:path/modules/:module/complete", s.handleCompleteModule)
	mutating.POST("/learn/progress/:path/reset", s.handleResetProgress)

	return nil
}
