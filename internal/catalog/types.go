package catalog

// Author identifies who published an item.
type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Rating is an informational average; nothing in this service recomputes it.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// ModelSettings carries LLM configuration for prompt-studio items.
type ModelSettings struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	TopP             *float64 `json:"topP,omitempty"`
	TopK             *int     `json:"topK,omitempty"`
	MaxTokens        *int     `json:"maxTokens,omitempty"`
	PresencePenalty  *float64 `json:"presencePenalty,omitempty"`
	FrequencyPenalty *float64 `json:"frequencyPenalty,omitempty"`
}

// Item holds the fields shared by prompts and skills.
type Item struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Author      Author   `json:"author"`
	Rating      Rating   `json:"rating"`
	Downloads   int      `json:"downloads"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// Prompt formats. "skill" also appears here because submissions share one
// format field across both item kinds.
const (
	FormatGeneral      = "general"
	FormatPromptStudio = "prompt-studio"
	FormatMCP          = "mcp"
	FormatSkill        = "skill"
)

// Formats lists the accepted submission formats.
var Formats = []string{FormatGeneral, FormatPromptStudio, FormatMCP, FormatSkill}

// Prompt is a reusable prompt listing.
type Prompt struct {
	Item
	Format          string         `json:"format"`
	BusinessArea    string         `json:"businessArea"`
	TargetPlatform  string         `json:"targetPlatform,omitempty"`
	MCPTools        []string       `json:"mcpTools,omitempty"`
	UsageExamples   []string       `json:"usageExamples,omitempty"`
	InputVariables  []string       `json:"inputVariables,omitempty"`
	Compatibility   []string       `json:"compatibility,omitempty"`
	LongDescription string         `json:"longDescription,omitempty"`
	ModelSettings   *ModelSettings `json:"modelSettings,omitempty"`
}

// SkillMetadata mirrors the manifest bundled with a packaged skill.
type SkillMetadata struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Version      string   `json:"version"`
	Author       string   `json:"author"`
	Repository   string   `json:"repository,omitempty"`
	License      string   `json:"license,omitempty"`
	Marketplace  bool     `json:"marketplace,omitempty"`
	Stars        int      `json:"stars,omitempty"`
	Forks        int      `json:"forks,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// Skill is a packaged skill listing. Format is always "skill".
type Skill struct {
	Item
	Format       string         `json:"format"`
	BusinessArea string         `json:"businessArea"`
	Version      string         `json:"version,omitempty"`
	Dependencies []string       `json:"dependencies,omitempty"`
	Metadata     *SkillMetadata `json:"metadata,omitempty"`
	SkillContent string         `json:"skillContent,omitempty"`
}

// Data is the on-disk snapshot layout.
type Data struct {
	Prompts []Prompt `json:"prompts"`
	Skills  []Skill  `json:"skills"`
}
