package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ObiBat/craefto-automation/internal/research"
)

const (
	configPathEnv    = "CRAEFTO_CONFIG"
	databaseDSNEnv   = "DATABASE_DSN"
	chatGPTAPIKeyEnv = "CHATGPT_API_KEY"
	chatGPTModelEnv  = "CHATGPT_MODEL"
	webhookURLEnv    = "WEBHOOK_URL"
	serverAddrEnv    = "SERVER_ADDR"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Research  ResearchConfig  `yaml:"research"`
	Sources   SourcesConfig   `yaml:"sources"`
	ChatGPT   ChatGPTConfig   `yaml:"chatgpt"`
	Webhook   WebhookConfig   `yaml:"webhook"`
}

// LoggingConfig controls slog verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ServerConfig describes the HTTP API listener.
type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CorsOrigins []string `yaml:"corsOrigins"`
}

// DatabaseConfig describes Postgres connection details. Empty DSN disables
// persistence.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// SchedulerConfig defines the recurring research cadence.
type SchedulerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Interval string `yaml:"interval"`
}

// Every parses the interval expression, reverting to 6h when absent or
// unparsable.
func (s SchedulerConfig) Every() time.Duration {
	d, err := time.ParseDuration(s.Interval)
	if err != nil || d <= 0 {
		return 6 * time.Hour
	}
	return d
}

// ResearchConfig surfaces the pipeline tunables worth overriding per deploy.
type ResearchConfig struct {
	TopK          int     `yaml:"topK"`
	IdeaTopN      int     `yaml:"ideaTopN"`
	MaxIdeas      int     `yaml:"maxIdeas"`
	IdeaThreshold float64 `yaml:"ideaThreshold"`
}

// Pipeline maps the overridable tunables onto the full pipeline config.
func (r ResearchConfig) Pipeline() research.Config {
	cfg := research.DefaultConfig()
	if r.TopK > 0 {
		cfg.TopK = r.TopK
	}
	if r.IdeaTopN > 0 {
		cfg.IdeaTopN = r.IdeaTopN
	}
	if r.MaxIdeas > 0 {
		cfg.MaxIdeas = r.MaxIdeas
	}
	if r.IdeaThreshold > 0 {
		cfg.IdeaThreshold = r.IdeaThreshold
	}
	return cfg
}

// SourcesConfig toggles the four topic adapters.
type SourcesConfig struct {
	Forum        ForumSourceConfig  `yaml:"forum"`
	LaunchBoard  LaunchSourceConfig `yaml:"launchBoard"`
	SocialTrends ToggleConfig       `yaml:"socialTrends"`
	SearchTrends ToggleConfig       `yaml:"searchTrends"`
}

// ForumSourceConfig points the forum adapter at a board.
type ForumSourceConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"baseUrl"`
	Board   string `yaml:"board"`
}

// LaunchSourceConfig points the launch-board scraper at a listing page.
type LaunchSourceConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
}

// ToggleConfig enables an adapter that needs no endpoint.
type ToggleConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ChatGPTConfig defines how to contact the content-drafting LLM API.
type ChatGPTConfig struct {
	Endpoint     string `yaml:"endpoint"`
	Model        string `yaml:"model"`
	APIKey       string `yaml:"apiKey"`
	SystemPrompt string `yaml:"systemPrompt"`
}

// WebhookConfig wires the downstream automation webhook. Empty URL disables
// the digest hand-off.
type WebhookConfig struct {
	URL string `yaml:"url"`
}

// Load reads .env, then YAML configuration (if present), and applies
// environment overrides for secrets. The file is decoded straight over the
// defaults so keys it sets win, including `enabled: false` toggles, while
// absent keys keep their default value.
func Load() Config {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			cfg = defaultConfig()
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv(chatGPTAPIKeyEnv); v != "" {
		c.ChatGPT.APIKey = v
	}
	if v := os.Getenv(chatGPTModelEnv); v != "" {
		c.ChatGPT.Model = v
	}
	if v := os.Getenv(webhookURLEnv); v != "" {
		c.Webhook.URL = v
	}
	if v := os.Getenv(serverAddrEnv); v != "" {
		c.Server.Addr = v
	}
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Server: ServerConfig{
			Addr:        ":8080",
			CorsOrigins: []string{"*"},
		},
		Database: DatabaseConfig{DSN: ""},
		Scheduler: SchedulerConfig{
			Enabled:  false,
			Interval: "6h",
		},
		Research: ResearchConfig{},
		Sources: SourcesConfig{
			Forum:        ForumSourceConfig{Enabled: true},
			LaunchBoard:  LaunchSourceConfig{Enabled: true},
			SocialTrends: ToggleConfig{Enabled: true},
			SearchTrends: ToggleConfig{Enabled: true},
		},
		ChatGPT: ChatGPTConfig{
			Endpoint:     "https://api.openai.com/v1/chat/completions",
			Model:        "gpt-4o-mini",
			SystemPrompt: "You turn content briefs into marketing copy drafts for a SaaS design studio.",
		},
		Webhook: WebhookConfig{URL: ""},
	}
}
