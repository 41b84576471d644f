package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleGetProgress(c *gin.Context) {
	if s == nil || s.progress == nil {
		respondError(c, http.StatusInternalServerError, errors.New("server not initialized"))
		return
	}

	pathID := strings.TrimSpace(c.Param("path"))
	if pathID == "" {
		respondError(c, http.StatusBadRequest, errors.New("missing path id"))
		return
	}

	modules := s.progress.Modules(pathID)
	c.JSON(http.StatusOK, gin.H{
		"pathId":    pathID,
		"completed": modules,
	})
}

func (s *Server) handleCompleteModule(c *gin.Context) {
	if s == nil || s.progress == nil {
		respondError(c, http.StatusInternalServerError, errors.New("server not initialized"))
		return
	}

	pathID := strings.TrimSpace(c.Param("path"))
	moduleID := strings.TrimSpace(c.Param("module"))
	if pathID == "" || moduleID == "" {
		respondError(c, http.StatusBadRequest, errors.New("missing path or module id"))
		return
	}

	rec, err := s.progress.SetCompleted(pathID, moduleID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleResetProgress(c *gin.Context) {
	if s == nil || s.progress == nil {
		respondError(c, http.StatusInternalServerError, errors.New("server not initialized"))
		return
	}

	pathID := strings.TrimSpace(c.Param("path"))
	if pathID == "" {
		respondError(c, http.StatusBadRequest, errors.New("missing path id"))
		return
	}

	if err := s.progress.Reset(pathID); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}
