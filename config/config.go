package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Intent recognition
	Intent  IntentConfig
	Cache   CacheConfig
	Redis   RedisConfig
	Music   MusicConfig
	Plugins PluginsConfig
	MCP     MCPConfig

	// Sessions & limits
	Session   SessionConfig
	RateLimit RateLimitConfig
	Assistant AssistantConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// IntentConfig tunes the classifier.
type IntentConfig struct {
	HistoryCount int
	Temperature  float64
	MaxTokens    int
}

type CacheConfig struct {
	Backend string // memory | redis
	Size    int
	TTL     time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type MusicConfig struct {
	Dir        string
	Extensions []string
	Watch      bool
}

type PluginsConfig struct {
	HomeAssistant HomeAssistantConfig
}

// HomeAssistantConfig lists controllable devices, one "location,name,entity_id" string each.
type HomeAssistantConfig struct {
	Devices []string
}

type MCPConfig struct {
	Endpoints []string
	Timeout   time.Duration
}

type SessionConfig struct {
	MaxSessions   int
	TTL           time.Duration
	Prompt        string
	AssistantName string
}

type RateLimitConfig struct {
	PerMin int
}

// AssistantConfig holds the facts result_for_context answers are built from.
type AssistantConfig struct {
	Timezone string
	City     string
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	// Intent
	cfg.Intent.HistoryCount = viper.GetInt("intent.history_count")
	cfg.Intent.Temperature = viper.GetFloat64("intent.temperature")
	cfg.Intent.MaxTokens = viper.GetInt("intent.max_tokens")

	// Cache
	cfg.Cache.Backend = viper.GetString("cache.backend")
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	cfg.Redis.Address = viper.GetString("redis.address")
	cfg.Redis.Password = expandEnvVar(viper.GetString("redis.password"))
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Music
	cfg.Music.Dir = viper.GetString("music.dir")
	cfg.Music.Extensions = getStringList("music.extensions")
	cfg.Music.Watch = viper.GetBool("music.watch")

	// Plugins
	cfg.Plugins.HomeAssistant.Devices = viper.GetStringSlice("plugins.home_assistant.devices")

	// MCP
	cfg.MCP.Endpoints = getStringList("mcp.endpoints")
	cfg.MCP.Timeout = viper.GetDuration("mcp.timeout")

	// Session
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.Prompt = viper.GetString("session.prompt")
	cfg.Session.AssistantName = viper.GetString("session.assistant_name")

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")
	cfg.Assistant.City = viper.GetString("assistant.city")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s") // Default: 60 seconds for entire fallback chain

	// Intent defaults
	viper.SetDefault("intent.history_count", 4)
	viper.SetDefault("intent.temperature", 0.1)
	viper.SetDefault("intent.max_tokens", 512)

	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.size", 10000)
	viper.SetDefault("cache.ttl", "24h")
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("music.dir", "./music")
	viper.SetDefault("music.extensions", []string{".mp3", ".wav", ".p3"})
	viper.SetDefault("music.watch", true)

	viper.SetDefault("mcp.timeout", "5s")

	viper.SetDefault("session.max_sessions", 1000)
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.assistant_name", "Xiaozhi")

	viper.SetDefault("rate_limit.per_min", 60)
	viper.SetDefault("assistant.timezone", "UTC")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// getStringList accepts either a YAML list or a comma-separated env value.
func getStringList(key string) []string {
	raw := viper.Get(key)
	if s, ok := raw.(string); ok {
		var out []string
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return viper.GetStringSlice(key)
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		// Check required fields
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
