package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
	AppEnv        string `mapstructure:"APP_ENV"`        // "production" switches gin to release mode
	LogMode       string `mapstructure:"LOG_MODE"`       // "development" or "production"
	StaticDir     string `mapstructure:"STATIC_DIR"`     // optional dir with the marketing site build

	// AI Configuration
	Provider             string `mapstructure:"AI_PROVIDER"`            // "gemini", "openai", or empty (fallback-only)
	GeminiAPIKey         string `mapstructure:"GEMINI_API_KEY"`         // API key for the Gemini API
	OpenAIKey            string `mapstructure:"OPENAI_API_KEY"`         // API key for OpenAI
	GeminiModel          string `mapstructure:"GEMINI_MODEL"`           // e.g., "gemini-1.5-flash"
	OpenAIModel          string `mapstructure:"OPENAI_MODEL"`           // e.g., "gpt-4o"
	RemoteTimeoutSeconds int    `mapstructure:"REMOTE_TIMEOUT_SECONDS"` // upper bound on one completion call
}

// Keys must be bound explicitly: AutomaticEnv alone does not feed
// Unmarshal, so an env-only deployment would read every field as empty.
var configKeys = []string{
	"SERVER_ADDRESS", "APP_ENV", "LOG_MODE", "STATIC_DIR",
	"AI_PROVIDER", "GEMINI_API_KEY", "OPENAI_API_KEY",
	"GEMINI_MODEL", "OPENAI_MODEL", "REMOTE_TIMEOUT_SECONDS",
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("binding env key %s: %w", key, err)
		}
	}

	err = v.ReadInConfig()
	if err != nil {
		// Config file is optional; env vars alone are a valid setup.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.ServerAddress == "" {
		config.ServerAddress = ":8080"
	}
	if config.GeminiModel == "" {
		config.GeminiModel = "gemini-1.5-flash"
	}
	if config.OpenAIModel == "" {
		config.OpenAIModel = "gpt-4o"
	}
	if config.RemoteTimeoutSeconds <= 0 {
		config.RemoteTimeoutSeconds = 45
	}
	// A missing credential is deliberately not an error: without one every
	// stage serves its deterministic local fallback.
	if config.Provider == "" {
		if config.GeminiAPIKey != "" {
			config.Provider = "gemini"
		} else if config.OpenAIKey != "" {
			config.Provider = "openai"
		}
	}

	return
}
