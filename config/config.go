package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Automation platform
	HomeAssistant HomeAssistantConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Orchestration knobs
	Assistant AssistantConfig
	Features  FeaturesConfig

	// Optional event publishing
	MQTT MQTTConfig
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

// HomeAssistantConfig points at the automation platform's REST API.
type HomeAssistantConfig struct {
	URL            string
	Token          string
	RequestTimeout time.Duration
	CacheMaxAge    time.Duration
	CameraCacheTTL time.Duration
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers         []ProviderConfig
	FallbackEnabled   bool
	RetryAttempts     int
	RetryDelay        time.Duration
	MaxTotalTimeout   time.Duration // Global timeout for entire fallback chain
	RequestsPerMinute int
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string
	Enabled  bool
	Priority int
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

type AssistantConfig struct {
	HistoryWindow    int
	ActionTimeout    time.Duration
	InterpretTimeout time.Duration
}

type FeaturesConfig struct {
	Voice            bool
	Automations      bool
	ImageRecognition bool
}

type MQTTConfig struct {
	Enabled     bool
	Host        string
	Port        int
	TLS         bool
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
	QoS         byte
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/, /data
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")
	v.AddConfigPath("/data")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

// LoadFile loads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}
	var err error

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	if level := v.GetString("log_level"); level != "" {
		cfg.Logger.Level = strings.ToLower(level)
	}

	// Home Assistant
	cfg.HomeAssistant.URL = v.GetString("home_assistant.url")
	cfg.HomeAssistant.Token = v.GetString("home_assistant.token")
	if haURL := v.GetString("ha_url"); haURL != "" {
		cfg.HomeAssistant.URL = haURL
	}
	if haToken := v.GetString("ha_token"); haToken != "" {
		cfg.HomeAssistant.Token = haToken
	}
	if cfg.HomeAssistant.Token == "" {
		cfg.HomeAssistant.Token = v.GetString("supervisor_token")
	}
	if cfg.HomeAssistant.RequestTimeout, err = duration(v, "home_assistant.request_timeout"); err != nil {
		return nil, err
	}
	if cfg.HomeAssistant.CacheMaxAge, err = duration(v, "home_assistant.cache_max_age"); err != nil {
		return nil, err
	}
	if cfg.HomeAssistant.CameraCacheTTL, err = duration(v, "home_assistant.camera_cache_ttl"); err != nil {
		return nil, err
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RequestsPerMinute = v.GetInt("llm.requests_per_minute")
	if cfg.LLM.RetryDelay, err = duration(v, "llm.retry_delay"); err != nil {
		return nil, err
	}
	if cfg.LLM.MaxTotalTimeout, err = duration(v, "llm.max_total_timeout"); err != nil {
		return nil, err
	}
	if cfg.LLM.Providers, err = loadProviders(v); err != nil {
		return nil, err
	}
	if len(cfg.LLM.Providers) == 0 {
		// Add-on mode: a single key in the environment selects the default provider.
		if key := v.GetString("manus_api_key"); key != "" {
			cfg.LLM.Providers = []ProviderConfig{{
				Name:     v.GetString("llm.default_provider"),
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    v.GetString("llm.default_model"),
			}}
		}
	}

	// Assistant
	cfg.Assistant.HistoryWindow = v.GetInt("assistant.history_window")
	if cfg.Assistant.ActionTimeout, err = duration(v, "assistant.action_timeout"); err != nil {
		return nil, err
	}
	if cfg.Assistant.InterpretTimeout, err = duration(v, "assistant.interpret_timeout"); err != nil {
		return nil, err
	}

	// Feature flags
	cfg.Features.Voice = v.GetBool("features.voice")
	cfg.Features.Automations = v.GetBool("features.automations")
	cfg.Features.ImageRecognition = v.GetBool("features.image_recognition")
	overrideBool(v, "enable_voice", &cfg.Features.Voice)
	overrideBool(v, "enable_automations", &cfg.Features.Automations)
	overrideBool(v, "enable_image_recognition", &cfg.Features.ImageRecognition)

	// MQTT
	cfg.MQTT.Enabled = v.GetBool("mqtt.enabled")
	cfg.MQTT.Host = v.GetString("mqtt.host")
	cfg.MQTT.Port = v.GetInt("mqtt.port")
	cfg.MQTT.TLS = v.GetBool("mqtt.tls")
	cfg.MQTT.ClientID = v.GetString("mqtt.client_id")
	cfg.MQTT.Username = v.GetString("mqtt.username")
	cfg.MQTT.Password = v.GetString("mqtt.password")
	cfg.MQTT.TopicPrefix = v.GetString("mqtt.topic_prefix")
	cfg.MQTT.QoS = byte(v.GetInt("mqtt.qos"))

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "production")
	v.SetDefault("http_server.port", 8099)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)

	v.SetDefault("home_assistant.url", "http://localhost:8123")
	v.SetDefault("home_assistant.request_timeout", "10s")
	v.SetDefault("home_assistant.cache_max_age", "30s")
	v.SetDefault("home_assistant.camera_cache_ttl", "5s")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "500ms")
	v.SetDefault("llm.max_total_timeout", "60s")
	v.SetDefault("llm.requests_per_minute", 60)
	v.SetDefault("llm.default_provider", "gemini")
	v.SetDefault("llm.default_model", "gemini-2.5-flash")

	v.SetDefault("assistant.history_window", 10)
	v.SetDefault("assistant.action_timeout", "10s")
	v.SetDefault("assistant.interpret_timeout", "30s")

	v.SetDefault("features.voice", true)
	v.SetDefault("features.automations", true)
	v.SetDefault("features.image_recognition", true)

	v.SetDefault("mqtt.enabled", false)
	v.SetDefault("mqtt.port", 1883)
	v.SetDefault("mqtt.client_id", "ha-ai-bridge")
	v.SetDefault("mqtt.topic_prefix", "ha-ai-bridge")
	v.SetDefault("mqtt.qos", 1)
}

// validate checks cross-field constraints after loading.
func (c *Config) validate() error {
	if c.HomeAssistant.URL == "" {
		return errors.New("home_assistant.url is required")
	}
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", c.HTTPServer.Port)
	}
	if c.Assistant.HistoryWindow < 0 {
		return errors.New("assistant.history_window must not be negative")
	}
	if c.LLM.RetryAttempts < 1 {
		return errors.New("llm.retry_attempts must be at least 1")
	}
	if c.MQTT.Enabled && c.MQTT.Host == "" {
		return errors.New("mqtt.host is required when mqtt is enabled")
	}
	if c.MQTT.QoS > 2 {
		return fmt.Errorf("mqtt.qos %d out of range", c.MQTT.QoS)
	}
	return validateLLMConfig(&c.LLM)
}

// loadProviders reads llm.providers and returns them sorted by priority.
func loadProviders(v *viper.Viper) ([]ProviderConfig, error) {
	if !v.IsSet("llm.providers") {
		return nil, nil
	}
	providersList, ok := v.Get("llm.providers").([]interface{})
	if !ok {
		return nil, errors.New("llm.providers must be a list")
	}

	var providers []ProviderConfig
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		provider := ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
		}
		if raw := getStringFromMap(providerMap, "timeout"); raw != "" {
			d, err := time.ParseDuration(raw)
			if err != nil {
				return nil, fmt.Errorf("provider %s: invalid timeout %q: %w", provider.Name, raw, err)
			}
			provider.Timeout = d
		}
		providers = append(providers, provider)
	}

	sort.SliceStable(providers, func(i, j int) bool {
		return providers[i].Priority < providers[j].Priority
	})
	return providers, nil
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set MANUS_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}

// overrideBool applies an add-on style "true"/"false" env var when present.
func overrideBool(v *viper.Viper, key string, dst *bool) {
	if raw := v.GetString(key); raw != "" {
		*dst = strings.EqualFold(raw, "true")
	}
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
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
