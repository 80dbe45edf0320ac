package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "DAYBE"

// Load configuration from environment variables and optionally config files.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment are never overridden by it. Environment
// variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.text_model", "gemini-2.5-flash")
	v.SetDefault("llm.image_model", "gemini-2.5-flash-image")
	v.SetDefault("llm.options_prompt_path", "")
	v.SetDefault("llm.image_prompt_path", "")
	v.SetDefault("speech.enabled", true)
	v.SetDefault("speech.model", "gemini-2.5-flash-preview-tts")
	v.SetDefault("speech.voice", "Kore")
	v.SetDefault("speech.lang", "vi-VN")
	v.SetDefault("speech.rate", 0.8)
	v.SetDefault("sessions.idle_ttl", "30m")
	v.SetDefault("sessions.sweep_interval", "1m")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The key is also accepted under the names used by Google's tooling.
	if err := v.BindEnv("llm.gemini_api_key", EnvPrefix+"_LLM_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind API key environment: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
