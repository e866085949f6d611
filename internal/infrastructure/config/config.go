package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "modportal/internal/shared/config"
)

type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Database sharedConfig.DatabaseConfig `mapstructure:"database"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Mail     sharedConfig.MailConfig     `mapstructure:"mail"`
	Uploads  sharedConfig.UploadsConfig  `mapstructure:"uploads"`
	Secrets  sharedConfig.SecretsConfig  `mapstructure:"secrets"`
	Session  sharedConfig.SessionConfig  `mapstructure:"session"`
	Redis    sharedConfig.RedisConfig    `mapstructure:"redis"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("MODPORTAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// A missing config file is fine; defaults plus env cover every key.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 5006)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "http://localhost:5006")

	// Database defaults
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "tickets.db")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.database", "modportal")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Mail defaults
	viper.SetDefault("mail.smtp_host", "smtp.telecom.local")
	viper.SetDefault("mail.smtp_port", 587)
	viper.SetDefault("mail.smtp_user", "")
	viper.SetDefault("mail.smtp_password", "")
	viper.SetDefault("mail.from_address", "noreply@telecom.com.ar")
	viper.SetDefault("mail.from_name", "Portal Tickets Ingeniería")
	viper.SetDefault("mail.cc_on_close", "iga-notify@telecom.com.ar")
	viper.SetDefault("mail.external_system_name", "IGA")
	viper.SetDefault("mail.attach_on_create", true)
	viper.SetDefault("mail.attach_on_close", true)
	viper.SetDefault("mail.prefer_desktop", false)
	viper.SetDefault("mail.desktop_command", "outlookctl")
	viper.SetDefault("mail.send_timeout_seconds", 20)

	// Uploads defaults
	viper.SetDefault("uploads.dir", "uploads")

	// Secrets defaults (override in production)
	viper.SetDefault("secrets.portal", "portal123")
	viper.SetDefault("secrets.admin", "admin123")

	// Session defaults
	viper.SetDefault("session.jwt_secret", "change-me-in-production")
	viper.SetDefault("session.exp_hours", 12)
	viper.SetDefault("session.cookie_name", "portal_session")

	// Redis defaults (disabled unless a host is configured)
	viper.SetDefault("redis.host", "")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.login_per_minute", 10)
	viper.SetDefault("redis.login_per_hour", 60)
}
