package api

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brettwhite-git/suiteprompt/internal/catalog"
	"github.com/brettwhite-git/suiteprompt/internal/config"
	"github.com/brettwhite-git/suiteprompt/internal/progress"
	"github.com/brettwhite-git/suiteprompt/internal/submission"
	"github.com/brettwhite-git/suiteprompt/internal/taxonomy"
)

// Submitter runs the submission pipeline for one payload.
type Submitter interface {
	Submit(ctx context.Context, req *submission.Request) (*submission.Result, error)
}

type Server struct {
	router    *gin.Engine
	catalog   *catalog.Catalog
	taxonomy  *taxonomy.Taxonomy
	submitter Submitter
	progress  *progress.Store
	config    *config.Config
}

func NewServer(cfg *config.Config, cat *catalog.Catalog, tax *taxonomy.Taxonomy, submitter Submitter, prog *progress.Store) (*Server, error) {
	r := gin.New()
	s := &Server{
		router:    r,
		catalog:   cat,
		taxonomy:  tax,
		submitter: submitter,
		progress:  prog,
		config:    cfg,
	}
	s.registerMiddleware()
	if err := s.registerRoutes(); err != nil {
		return nil, err
	}
	s.registerStatic()
	return s, nil
}

func (s *Server) Run(addr string) error {
	if s == nil || s.router == nil {
		return errors.New("api: nil server")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		addr = ":8080"
	}
	return s.router.Run(addr)
}
