package submission

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/brettwhite-git/suiteprompt/internal/catalog"
	"github.com/brettwhite-git/suiteprompt/internal/taxonomy"
)

const (
	maxTitleLen        = 100
	maxDescriptionLen  = 500
	maxContentLen      = 5000
	maxSkillContentLen = 10000
	maxTags            = 5
)

var validTargetPlatforms = map[string]struct{}{
	"text-enhance":  {},
	"prompt-studio": {},
	"advisor":       {},
	"mcp":           {},
}

// Validate checks a raw payload against the submission schema and returns
// every violation at once, or nil when the payload is clean. No external
// side effect happens before this passes.
func Validate(req *Request, tax *taxonomy.Taxonomy) *ValidationError {
	var fields []FieldError
	add := func(field, message string) {
		fields = append(fields, FieldError{Field: field, Message: message})
	}

	if req == nil {
		add("body", "Request body is required")
		return &ValidationError{Fields: fields}
	}

	switch {
	case strings.TrimSpace(req.Title) == "" || SanitizeInput(req.Title) == "":
		add("title", "Title is required")
	case utf8.RuneCountInString(req.Title) > maxTitleLen:
		add("title", "Title must be less than 100 characters")
	}

	validFormat := false
	for _, f := range catalog.Formats {
		if req.Format == f {
			validFormat = true
			break
		}
	}
	if !validFormat {
		add("format", "Invalid format")
	}

	switch {
	case strings.TrimSpace(req.Description) == "" || SanitizeInput(req.Description) == "":
		add("description", "Description is required")
	case utf8.RuneCountInString(req.Description) > maxDescriptionLen:
		add("description", "Description must be less than 500 characters")
	}

	if utf8.RuneCountInString(req.Content) > maxContentLen {
		add("content", "Content must be less than 5000 characters")
	}
	if utf8.RuneCountInString(req.SystemPrompt) > maxContentLen {
		add("systemPrompt", "System prompt must be less than 5000 characters")
	}
	if utf8.RuneCountInString(req.SkillContent) > maxSkillContentLen {
		add("skillContent", "Skill content must be less than 10000 characters")
	}

	if req.Temperature != nil && (*req.Temperature < 0 || *req.Temperature > 1) {
		add("temperature", "Temperature must be between 0 and 1")
	}
	if req.MaxTokens != nil && (*req.MaxTokens < 1 || *req.MaxTokens > 4096) {
		add("maxTokens", "Max tokens must be between 1 and 4096")
	}

	validateBusinessArea(req, tax, add)

	for _, platform := range req.TargetPlatform {
		if _, ok := validTargetPlatforms[platform]; !ok {
			add("targetPlatform", "Invalid target platform")
			break
		}
	}

	if validFormat && req.Format == catalog.FormatMCP && len(req.MCPTools) == 0 {
		add("mcpTools", "At least one MCP tool is required for MCP prompts")
	}

	if len(req.Tags) > maxTags {
		add("tags", "Maximum 5 tags allowed")
	}

	if SanitizeInput(req.SubmitterName) == "" {
		add("submitterName", "Name is required")
	}

	if _, err := mail.ParseAddress(strings.TrimSpace(req.SubmitterEmail)); err != nil {
		add("submitterEmail", "Valid email required")
	}

	if !req.AgreeToTerms {
		add("agreeToTerms", "You must agree to the terms")
	}

	if strings.TrimSpace(req.TurnstileToken) == "" {
		add("turnstileToken", "CAPTCHA verification required")
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// The one cross-field rule in the schema: a skill submission must use a
// skill category id, everything else a prompt category id.
func validateBusinessArea(req *Request, tax *taxonomy.Taxonomy, add func(field, message string)) {
	area := strings.TrimSpace(req.BusinessArea)
	if area == "" {
		add("businessArea", "Category is required")
		return
	}
	if !tax.IsPromptCategory(area) && !tax.IsSkillCategory(area) {
		add("businessArea", "Invalid category. Must be a valid category from the submission form.")
		return
	}

	if req.Format == catalog.FormatSkill {
		if !tax.IsSkillCategory(area) {
			add("businessArea", "For skills, you must select a valid skill category")
		}
		return
	}
	if !tax.IsPromptCategory(area) {
		add("businessArea", "For this format, you must select a valid prompt category")
	}
}
