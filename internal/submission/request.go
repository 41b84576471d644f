// Package submission implements the community submission pipeline: schema
// validation, CAPTCHA verification, normalization into a catalog record, and
// the PR-plus-email orchestration around it.
package submission

import (
	"fmt"
	"strings"
)

// Request is the raw submission payload from the storefront form.
type Request struct {
	Title       string `json:"title"`
	Format      string `json:"format"`
	Description string `json:"description"`

	// general and mcp formats
	Content        string   `json:"content,omitempty"`
	InputVariables []string `json:"inputVariables,omitempty"`

	// prompt-studio format
	SystemPrompt string   `json:"systemPrompt,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	MaxTokens    *int     `json:"maxTokens,omitempty"`

	// skill format
	SkillContent string `json:"skillContent,omitempty"`

	BusinessArea   string   `json:"businessArea"`
	TargetPlatform []string `json:"targetPlatform,omitempty"`
	MCPTools       []string `json:"mcpTools,omitempty"`
	Tags           []string `json:"tags,omitempty"`

	// SubmitterEmail is split off before normalization and never written
	// into the committed record.
	SubmitterName  string `json:"submitterName"`
	SubmitterEmail string `json:"submitterEmail"`
	AgreeToTerms   bool   `json:"agreeToTerms"`

	TurnstileToken string `json:"turnstileToken"`
}

// Sanitize strips angle brackets and surrounding whitespace from the
// free-text fields, mirroring the storefront's input pass.
func (r *Request) Sanitize() {
	if r == nil {
		return
	}
	r.Title = SanitizeInput(r.Title)
	r.Description = SanitizeInput(r.Description)
	r.SubmitterName = SanitizeInput(r.SubmitterName)
}

// FieldError is one schema violation tied to a payload field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field violation in a payload. Callers get
// the full list, never just the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "submission: invalid payload"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "submission: invalid payload: " + strings.Join(parts, "; ")
}

// Result reports the reviewable artifact created for a submission.
type Result struct {
	ID       string `json:"id"`
	PRURL    string `json:"prUrl"`
	PRNumber int    `json:"prNumber"`
}
