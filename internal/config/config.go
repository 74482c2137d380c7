package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"capital-rush/internal/round"
)

// Config holds application configuration loaded from an optional config file
// and environment variables.
type Config struct {
	Env          string `mapstructure:"env"`           // current application environment (local, production)
	BankPath     string `mapstructure:"bank_path"`     // path to the JSON question bank
	DataDir      string `mapstructure:"data_dir"`      // high score directory; empty selects the home dir default
	FastFeedback bool   `mapstructure:"fast_feedback"` // shorten the post-answer pause
	Mute         bool   `mapstructure:"mute"`          // disable feedback sounds
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Pick up a local .env file when present; absence is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("bank_path", "assets/data/capitals.json")
	v.SetDefault("data_dir", "")
	v.SetDefault("fast_feedback", false)
	v.SetDefault("mute", false)

	v.SetEnvPrefix("capital_rush")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// FeedbackDelay maps the fast-feedback switch to the round machine's
// post-resolution pause.
func (c *Config) FeedbackDelay() time.Duration {
	if c.FastFeedback {
		return round.FastFeedbackDelay
	}
	return round.DefaultConfig().FeedbackDelay
}
