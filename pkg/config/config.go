package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:briefly.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Auth struct {
		SessionTTL      time.Duration `yaml:"session_ttl" json:"session_ttl" jsonschema:"default=168h,description=Session lifetime"`
		CleanupInterval time.Duration `yaml:"cleanup_interval" json:"cleanup_interval" jsonschema:"default=1h,description=Expired session purge interval"`
	} `yaml:"auth" json:"auth" jsonschema:"description=Session configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for the assistant"`

	News NewsConfig `yaml:"news" json:"news" jsonschema:"description=News briefing configuration"`

	Calendar CalendarConfig `yaml:"calendar" json:"calendar" jsonschema:"description=Calendar OAuth configuration"`
}

// LLMConfig holds configuration for the LLM-backed assistant. An empty
// endpoint or model leaves the assistant disabled and every question is
// answered by the local fallback responder.
type LLMConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the assistant (optional)"`
}

// NewsConfig holds live news feed settings. Feeds maps a category to RSS
// feed URLs; when empty the briefing uses the built-in catalog.
type NewsConfig struct {
	Feeds     map[string][]string `yaml:"feeds" json:"feeds" jsonschema:"description=Category to RSS feed URLs"`
	Timeout   time.Duration       `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Feed fetch timeout"`
	UserAgent string              `yaml:"user_agent" json:"user_agent" jsonschema:"default=Briefly/1.0,description=User agent for feed requests"`
}

// CalendarConfig holds Google OAuth settings for the calendar connection flow
type CalendarConfig struct {
	GoogleClientID string `yaml:"google_client_id" json:"google_client_id" jsonschema:"description=Google OAuth client ID"`
	RedirectURL    string `yaml:"redirect_url" json:"redirect_url" jsonschema:"description=OAuth callback URL"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills in zero values with the documented defaults
func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:briefly.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Auth.SessionTTL == 0 {
		c.Auth.SessionTTL = 7 * 24 * time.Hour
	}
	if c.Auth.CleanupInterval == 0 {
		c.Auth.CleanupInterval = time.Hour
	}

	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 500
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}

	if c.News.Timeout == 0 {
		c.News.Timeout = 15 * time.Second
	}
	if c.News.UserAgent == "" {
		c.News.UserAgent = "Briefly/1.0"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// LLM is optional, but a partial configuration is a mistake
	if cfg.LLM.Endpoint != "" && cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required when llm.endpoint is set")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	if cfg.Auth.SessionTTL < time.Minute {
		return fmt.Errorf("auth.session_ttl must be at least 1 minute")
	}

	for category, urls := range cfg.News.Feeds {
		if len(urls) == 0 {
			return fmt.Errorf("news.feeds.%s has no feed URLs", category)
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetNewsConfig returns news feed configuration
func (c *Config) GetNewsConfig() NewsConfig {
	return c.News
}

// GetCalendarConfig returns calendar OAuth configuration
func (c *Config) GetCalendarConfig() CalendarConfig {
	return c.Calendar
}

// GetAuthConfig returns session lifetime and cleanup interval
func (c *Config) GetAuthConfig() (sessionTTL, cleanupInterval time.Duration) {
	return c.Auth.SessionTTL, c.Auth.CleanupInterval
}
