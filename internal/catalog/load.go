package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// DefaultPath is the snapshot location relative to the working directory.
const DefaultPath = "data/marketplace.json"

// Catalog is an immutable in-memory snapshot of the marketplace. It is loaded
// once at startup and never mutated; queries return fresh slices.
type Catalog struct {
	prompts []Prompt
	skills  []Skill
}

// New wraps an already-decoded snapshot.
func New(data Data) *Catalog {
	return &Catalog{prompts: data.Prompts, skills: data.Skills}
}

// Load reads the marketplace snapshot from a JSON file.
func Load(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultPath
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %q: %w", path, err)
	}

	var data Data
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("catalog: parse %q: %w", path, err)
	}

	return New(data), nil
}

// PromptByID returns the prompt with the given id, or false when absent.
func (c *Catalog) PromptByID(id string) (Prompt, bool) {
	if c == nil {
		return Prompt{}, false
	}
	for _, p := range c.prompts {
		if p.ID == id {
			return p, true
		}
	}
	return Prompt{}, false
}

// SkillByID returns the skill with the given id, or false when absent.
func (c *Catalog) SkillByID(id string) (Skill, bool) {
	if c == nil {
		return Skill{}, false
	}
	for _, s := range c.skills {
		if s.ID == id {
			return s, true
		}
	}
	return Skill{}, false
}

// Len reports the snapshot size as (prompts, skills).
func (c *Catalog) Len() (int, int) {
	if c == nil {
		return 0, 0
	}
	return len(c.prompts), len(c.skills)
}
