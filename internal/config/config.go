package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the main structure mapping the entire application configuration.
// It is loaded once at startup and passed explicitly into the components
// that need it; nothing reads configuration from ambient global state.
type Config struct {
	// Server configuration section containing HTTP server settings
	Server struct {
		Port int `mapstructure:"port"` // HTTP server port (default: 8080)
		// BaseURL, when set, overrides the request-derived base URL used
		// for image links and the OpenAPI servers entry.
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"server"`

	// Database configuration section for SQLite settings
	Database struct {
		Name string `mapstructure:"name"` // SQLite database file name
	} `mapstructure:"database"`

	// Telegram configuration for the contact form relay.
	// When either value is empty the relay is disabled and contact
	// submissions are stored without sending a notification.
	Telegram struct {
		BotToken       string `mapstructure:"bot_token"`
		ChatID         string `mapstructure:"chat_id"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"` // outbound call timeout (default: 10)
	} `mapstructure:"telegram"`

	// Admin holds the shared secret authorizing social-links writes.
	Admin struct {
		Token string `mapstructure:"token"` // compared against the X-Admin-Token header
	} `mapstructure:"admin"`
}

// LoadConfig loads the application configuration using Viper.
// It supports environment variable overrides (e.g. TELEGRAM_BOT_TOKEN,
// ADMIN_TOKEN) and a YAML configuration file under ./configs.
func LoadConfig() (*Config, error) {
	viper.AutomaticEnv()

	// Replace dots with underscores in environment variable names,
	// e.g. "telegram.bot_token" becomes "TELEGRAM_BOT_TOKEN".
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.AddConfigPath("./configs")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.base_url", "")
	viper.SetDefault("database.name", "portfolio.db")
	viper.SetDefault("telegram.bot_token", "")
	viper.SetDefault("telegram.chat_id", "")
	viper.SetDefault("telegram.timeout_seconds", 10)
	viper.SetDefault("admin.token", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Not fatal - defaults and environment variables still apply.
			log.Println("Config file not found, using default values")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	log.Printf("Configuration loaded: Server Port=%d, DB Name=%s, Relay Enabled=%t",
		cfg.Server.Port, cfg.Database.Name,
		cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "")

	return &cfg, nil
}
