// Package taxonomy holds the read-only category data used to classify
// marketplace items and validate submissions. It is loaded once at startup;
// nothing mutates it afterwards.
package taxonomy

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the optional on-disk override location.
const DefaultPath = "data/taxonomy.yaml"

// Category describes one submission category.
type Category struct {
	DisplayName string `yaml:"displayName" json:"displayName"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// SubmissionCategories splits categories by item kind. A submission with
// format "skill" must use a skill category id; every other format must use a
// prompt category id.
type SubmissionCategories struct {
	Prompts map[string]Category `yaml:"prompts" json:"prompts"`
	Skills  map[string]Category `yaml:"skills" json:"skills"`
}

// Taxonomy is the full category configuration.
type Taxonomy struct {
	SubmissionCategories SubmissionCategories `yaml:"submissionCategories" json:"submissionCategories"`
}

// Default returns the compiled-in taxonomy matching the storefront.
func Default() *Taxonomy {
	prompts := map[string]Category{
		"accounting":    {DisplayName: "Accounting"},
		"sales":         {DisplayName: "Sales"},
		"inventory":     {DisplayName: "Inventory"},
		"crm":           {DisplayName: "CRM"},
		"suitecloud":    {DisplayName: "SuiteCloud"},
		"admin":         {DisplayName: "Administration"},
		"manufacturing": {DisplayName: "Manufacturing"},
		"field-service": {DisplayName: "Field Service"},
		"forecasting":   {DisplayName: "Forecasting"},
		"support":       {DisplayName: "Support"},
		"procurement":   {DisplayName: "Procurement"},
		"project-mgmt":  {DisplayName: "Project Management"},
		"hr":            {DisplayName: "Human Resources"},
		"international": {DisplayName: "International"},
	}
	skills := map[string]Category{
		"development":    {DisplayName: "Development"},
		"administration": {DisplayName: "Administration"},
		"integration":    {DisplayName: "Integration"},
		"analytics":      {DisplayName: "Analytics"},
		"automation":     {DisplayName: "Automation"},
	}
	return &Taxonomy{SubmissionCategories: SubmissionCategories{Prompts: prompts, Skills: skills}}
}

// Load reads a taxonomy override from a YAML file. A missing file at the
// default path falls back to the compiled-in taxonomy.
func Load(path string) (*Taxonomy, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultPath
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return Default(), nil
		}
		return nil, fmt.Errorf("taxonomy: read %q: %w", path, err)
	}

	var t Taxonomy
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("taxonomy: parse %q: %w", path, err)
	}
	if len(t.SubmissionCategories.Prompts) == 0 || len(t.SubmissionCategories.Skills) == 0 {
		return nil, fmt.Errorf("taxonomy: %q: submissionCategories must declare prompts and skills", path)
	}
	return &t, nil
}

// IsPromptCategory reports whether id is a valid prompt submission category.
func (t *Taxonomy) IsPromptCategory(id string) bool {
	if t == nil {
		return false
	}
	_, ok := t.SubmissionCategories.Prompts[id]
	return ok
}

// IsSkillCategory reports whether id is a valid skill submission category.
func (t *Taxonomy) IsSkillCategory(id string) bool {
	if t == nil {
		return false
	}
	_, ok := t.SubmissionCategories.Skills[id]
	return ok
}

// PromptCategoryIDs returns the sorted prompt category ids.
func (t *Taxonomy) PromptCategoryIDs() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.SubmissionCategories.Prompts))
	for id := range t.SubmissionCategories.Prompts {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// SkillCategoryIDs returns the sorted skill category ids.
func (t *Taxonomy) SkillCategoryIDs() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.SubmissionCategories.Skills))
	for id := range t.SubmissionCategories.Skills {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
