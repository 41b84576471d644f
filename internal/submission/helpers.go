package submission

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/brettwhite-git/suiteprompt/internal/catalog"
)

var (
	bracketVarPattern = regexp.MustCompile(`\[([A-Z_]+)\]`)
	dollarVarPattern  = regexp.MustCompile(`\$\{([A-Za-z_]+)\}`)
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// SanitizeInput strips '<' and '>' then trims whitespace. This is the
// storefront's minimal XSS pass, not a general HTML sanitizer; encoded or
// nested payloads pass through untouched.
func SanitizeInput(input string) string {
	input = strings.ReplaceAll(input, "<", "")
	input = strings.ReplaceAll(input, ">", "")
	return strings.TrimSpace(input)
}

// ExtractVariables pulls placeholder tokens out of prompt content: [NAME]
// bracket tokens first, then ${name} tokens, in order of first occurrence
// with duplicates removed.
func ExtractVariables(content string) []string {
	var out []string
	seen := make(map[string]struct{})

	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	for _, m := range bracketVarPattern.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}
	for _, m := range dollarVarPattern.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}

	return out
}

// NewID generates a submission id of the form
// submitted-{unix_millis}-{5 random base36 chars}. Uniqueness is
// probabilistic; a collision surfaces later as a branch-creation failure.
func NewID() (string, error) {
	var buf [5]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("submission: generate id: %w", err)
	}
	suffix := make([]byte, len(buf))
	for i, b := range buf {
		suffix[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return fmt.Sprintf("submitted-%d-%s", time.Now().UnixMilli(), suffix), nil
}

// AsPrompt normalizes a validated, sanitized request into the canonical
// catalog record that gets committed for review. The submitter's email is
// not part of the request fields read here.
func AsPrompt(req *Request, id string, now time.Time) catalog.Prompt {
	var content string
	var settings *catalog.ModelSettings

	switch req.Format {
	case catalog.FormatGeneral, catalog.FormatMCP:
		content = req.Content
	case catalog.FormatPromptStudio:
		content = req.SystemPrompt
		settings = &catalog.ModelSettings{
			Temperature: req.Temperature,
			MaxTokens:   req.MaxTokens,
		}
	case catalog.FormatSkill:
		content = req.SkillContent
	}

	// Variables are derived from the content field, not the format-specific
	// body. The storefront behaves the same way.
	vars := req.InputVariables
	if len(vars) == 0 {
		if req.Content != "" {
			vars = ExtractVariables(req.Content)
		} else {
			vars = []string{}
		}
	}

	targetPlatform := ""
	if len(req.TargetPlatform) > 0 {
		targetPlatform = req.TargetPlatform[0]
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	stamp := now.UTC().Format(time.RFC3339)

	return catalog.Prompt{
		Item: catalog.Item{
			ID:          id,
			Title:       req.Title,
			Description: req.Description,
			Content:     content,
			Author: catalog.Author{
				ID:   fmt.Sprintf("submitted-%d", now.UnixMilli()),
				Name: req.SubmitterName,
			},
			Rating:    catalog.Rating{},
			Downloads: 0,
			Tags:      tags,
			CreatedAt: stamp,
			UpdatedAt: stamp,
		},
		Format:         req.Format,
		BusinessArea:   req.BusinessArea,
		TargetPlatform: targetPlatform,
		MCPTools:       req.MCPTools,
		InputVariables: vars,
		Compatibility:  []string{},
		ModelSettings:  settings,
	}
}
