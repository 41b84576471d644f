package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	GitHub   GitHubConfig   `yaml:"github"`
	Captcha  CaptchaConfig  `yaml:"captcha"`
	Email    EmailConfig    `yaml:"email"`
	Progress ProgressConfig `yaml:"progress"`
}

type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

type CatalogConfig struct {
	Path         string `yaml:"path,omitempty"`
	TaxonomyPath string `yaml:"taxonomy_path,omitempty"`
}

type GitHubConfig struct {
	Token      string `yaml:"token,omitempty"`
	Owner      string `yaml:"owner,omitempty"`
	Repo       string `yaml:"repo,omitempty"`
	BaseBranch string `yaml:"base_branch,omitempty"`
}

type CaptchaConfig struct {
	Secret   string `yaml:"secret,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

type EmailConfig struct {
	APIKey string `yaml:"api_key,omitempty"`
	From   string `yaml:"from,omitempty"`
}

type ProgressConfig struct {
	Path string `yaml:"path,omitempty"`
}

// Load reads the YAML config and applies env overrides. A missing file at
// the default path is fine; the service can run entirely from env vars.
func Load(path string) (*Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultPath
	}

	var cfg Config
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %q: %w", path, err)
		}
	case os.IsNotExist(err) && path == DefaultPath:
		// Env-only configuration.
	default:
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	if v := strings.TrimSpace(os.Getenv("GITHUB_TOKEN")); v != "" {
		cfg.GitHub.Token = v
	}
	if v := strings.TrimSpace(os.Getenv("GITHUB_REPO_OWNER")); v != "" {
		cfg.GitHub.Owner = v
	}
	if v := strings.TrimSpace(os.Getenv("GITHUB_REPO_NAME")); v != "" {
		cfg.GitHub.Repo = v
	}
	if v := strings.TrimSpace(os.Getenv("TURNSTILE_SECRET_KEY")); v != "" {
		cfg.Captcha.Secret = v
	}
	if v := strings.TrimSpace(os.Getenv("RESEND_API_KEY")); v != "" {
		cfg.Email.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("RESEND_FROM_EMAIL")); v != "" {
		cfg.Email.From = v
	}

	return &cfg, nil
}
