package config

import (
	"fmt"
	"strings"
)

type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Path            string `mapstructure:"path"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN builds the driver-specific connection string. For sqlite this is the
// database file path; for mysql the usual tcp DSN.
func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == "mysql" {
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	}
	return d.Path
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type MailConfig struct {
	SMTPHost           string `mapstructure:"smtp_host"`
	SMTPPort           int    `mapstructure:"smtp_port"`
	SMTPUser           string `mapstructure:"smtp_user"`
	SMTPPassword       string `mapstructure:"smtp_password"`
	FromAddress        string `mapstructure:"from_address"`
	FromName           string `mapstructure:"from_name"`
	CCOnClose          string `mapstructure:"cc_on_close"`
	ExternalSystemName string `mapstructure:"external_system_name"`
	AttachOnCreate     bool   `mapstructure:"attach_on_create"`
	AttachOnClose      bool   `mapstructure:"attach_on_close"`
	PreferDesktop      bool   `mapstructure:"prefer_desktop"`
	DesktopCommand     string `mapstructure:"desktop_command"`
	SendTimeoutSeconds int    `mapstructure:"send_timeout_seconds"`
}

// CCOnCloseList splits the configured closure distribution list.
func (m *MailConfig) CCOnCloseList() []string {
	var out []string
	for _, addr := range strings.Split(m.CCOnClose, ",") {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

type UploadsConfig struct {
	Dir string `mapstructure:"dir"`
}

type SecretsConfig struct {
	Portal string `mapstructure:"portal"`
	Admin  string `mapstructure:"admin"`
}

type SessionConfig struct {
	JWTSecret  string `mapstructure:"jwt_secret"`
	ExpHours   int    `mapstructure:"exp_hours"`
	CookieName string `mapstructure:"cookie_name"`
}

type RedisConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	Password          string `mapstructure:"password"`
	DB                int    `mapstructure:"db"`
	LoginPerMinute    int    `mapstructure:"login_per_minute"`
	LoginPerHour      int    `mapstructure:"login_per_hour"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Enabled reports whether a Redis endpoint is configured at all; the login
// rate limiter degrades to a no-op when it is not.
func (r *RedisConfig) Enabled() bool {
	return r.Host != ""
}
