package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brettwhite-git/suiteprompt/internal/ghrepo"
	"github.com/brettwhite-git/suiteprompt/internal/metrics"
	"github.com/brettwhite-git/suiteprompt/internal/submission"
)

func (s *Server) handleSubmitPrompt(c *gin.Context) {
	if s == nil || s.submitter == nil {
		respondError(c, http.StatusInternalServerError, errors.New("server not initialized"))
		return
	}

	var req submission.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordSubmission("validation_failed")
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed",
			"details": []submission.FieldError{{Field: "body", Message: err.Error()}},
		})
		return
	}

	result, err := s.submitter.Submit(c.Request.Context(), &req)
	if err != nil {
		s.respondSubmitError(c, err)
		return
	}

	metrics.RecordSubmission("accepted")
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"prUrl":    result.PRURL,
		"prNumber": result.PRNumber,
		"message":  "Submission successful! Your prompt is now under review.",
	})
}

// Failure categories map to distinct status codes so the storefront can tell
// the submitter whether retrying makes sense. Nothing is retried server-side.
func (s *Server) respondSubmitError(c *gin.Context, err error) {
	var verr *submission.ValidationError
	if errors.As(err, &verr) {
		metrics.RecordSubmission("validation_failed")
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed",
			"details": verr.Fields,
		})
		return
	}

	if errors.Is(err, submission.ErrCaptchaFailed) {
		metrics.RecordSubmission("captcha_failed")
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "CAPTCHA verification failed",
		})
		return
	}

	if ghrepo.IsRateLimit(err) {
		metrics.RecordSubmission("rate_limited")
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success": false,
			"error":   "GitHub API rate limit exceeded. Please try again in a few minutes.",
		})
		return
	}

	if ghrepo.IsTimeout(err) {
		metrics.RecordSubmission("timeout")
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"success": false,
			"error":   "Request timed out. Please try again. Your data has been preserved.",
		})
		return
	}

	log.Printf("api: submission failed: %v", err)
	metrics.RecordSubmission("error")
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "Failed to create submission. Please try again.",
	})
}
