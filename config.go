package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samgozman/fin-scraper/economist"
	"github.com/spf13/viper"
)

// Env is a structure that holds all the environment variables that are used in the app.
type Env struct {
	FredAPIKey   string        `mapstructure:"FRED_API_KEY"`
	FredBaseURL  string        `mapstructure:"FRED_BASE_URL" validate:"required,url"`
	HTTPTimeout  time.Duration `mapstructure:"HTTP_TIMEOUT" validate:"gt=0"`
	SecUserAgent string        `mapstructure:"SEC_USER_AGENT" validate:"required"`
	SentryDSN    string        `mapstructure:"SENTRY_DSN" validate:"omitempty,url"`
	LogLevel     string        `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

type Config struct {
	env                *Env     // Holds all the environment variables that are used in the app
	suspiciousKeywords []string // Used to "flag" suspicious news by the journalist.Journalist
}

// NewConfig creates a new Config object with the given Env and default values from DefaultConfig.
func NewConfig(env *Env) *Config {
	c := DefaultConfig()
	c.env = env
	return c
}

// DefaultConfig creates a new Config object with default values.
func DefaultConfig() *Config {
	return &Config{
		env: &Env{},
		suspiciousKeywords: []string{
			"sign up",
			"buy now",
			"subscribe",
			"sponsored",
			"advertisement",
			"promoted",
			"class action lawsuit",
			"class-action lawsuit",
			"shareholder alert",
			"investor alert",
			"law firm",
		},
	}
}

// envDefaults are applied before the environment is read.
var envDefaults = map[string]any{
	"FRED_BASE_URL":  economist.DefaultBaseURL,
	"HTTP_TIMEOUT":   economist.DefaultTimeout,
	"SEC_USER_AGENT": "fin-scraper admin@example.com",
	"LOG_LEVEL":      "warn",
}

// LoadEnv reads the environment (and the optional .env files) into Env and validates it.
// Without files, ".env" of the working directory is used when it exists.
func LoadEnv(files ...string) (*Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	for k, val := range envDefaults {
		v.SetDefault(k, val)
	}
	for _, k := range []string{"FRED_API_KEY", "SENTRY_DSN"} {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", k, err)
		}
	}
	v.AutomaticEnv()

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	env.LogLevel = strings.ToLower(strings.TrimSpace(env.LogLevel))

	if err := validator.New().Struct(&env); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	return &env, nil
}
