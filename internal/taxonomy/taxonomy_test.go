package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategories(t *testing.T) {
	tax := Default()

	assert.True(t, tax.IsPromptCategory("accounting"))
	assert.True(t, tax.IsPromptCategory("suitecloud"))
	assert.False(t, tax.IsPromptCategory("development"))

	assert.True(t, tax.IsSkillCategory("development"))
	assert.True(t, tax.IsSkillCategory("automation"))
	assert.False(t, tax.IsSkillCategory("accounting"))

	assert.Len(t, tax.PromptCategoryIDs(), 14)
	assert.Equal(t, []string{"administration", "analytics", "automation", "development", "integration"},
		tax.SkillCategoryIDs())
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	doc := `submissionCategories:
  prompts:
    billing:
      displayName: Billing
  skills:
    reporting:
      displayName: Reporting
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	tax, err := Load(path)
	require.NoError(t, err)
	assert.True(t, tax.IsPromptCategory("billing"))
	assert.False(t, tax.IsPromptCategory("accounting"))
	assert.True(t, tax.IsSkillCategory("reporting"))
	assert.Equal(t, "Billing", tax.SubmissionCategories.Prompts["billing"].DisplayName)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "taxonomy: read")
}

func TestLoadRejectsIncompleteOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	doc := `submissionCategories:
  prompts:
    billing:
      displayName: Billing
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must declare prompts and skills")
}

func TestNilTaxonomy(t *testing.T) {
	var tax *Taxonomy
	assert.False(t, tax.IsPromptCategory("accounting"))
	assert.False(t, tax.IsSkillCategory("development"))
	assert.Nil(t, tax.PromptCategoryIDs())
}
