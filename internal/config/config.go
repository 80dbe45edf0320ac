package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
	Speech   SpeechConfig   `mapstructure:"speech"   validate:"required"`
	Sessions SessionsConfig `mapstructure:"sessions" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all Gemini integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	TextModel    string `mapstructure:"text_model"     validate:"required"`
	ImageModel   string `mapstructure:"image_model"    validate:"required"`

	// Optional prompt template overrides; the built-in templates are used when empty.
	OptionsPromptPath string `mapstructure:"options_prompt_path" validate:"omitempty,file"`
	ImagePromptPath   string `mapstructure:"image_prompt_path"   validate:"omitempty,file"`
}

// SpeechConfig contains alphabet pronunciation settings.
type SpeechConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Model   string  `mapstructure:"model"   validate:"required_if=Enabled true"`
	Voice   string  `mapstructure:"voice"   validate:"required_if=Enabled true"`
	Lang    string  `mapstructure:"lang"    validate:"required,bcp47_language_tag"`
	Rate    float64 `mapstructure:"rate"    validate:"gt=0,lte=2"`
}

// SessionsConfig controls how long idle game sessions are kept in memory.
type SessionsConfig struct {
	// IdleTTL is how long a session may go without any update before it is evicted
	IdleTTL time.Duration `mapstructure:"idle_ttl" validate:"gte=1m"`

	// SweepInterval defines how often idle sessions are looked for
	SweepInterval time.Duration `mapstructure:"sweep_interval" validate:"gte=1s"`
}
