package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Mail      MailConfig
	Notifier  NotifierConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig
	GitHub    GitHubConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Mode         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// TrustedProxies may set X-Forwarded-For. Empty means the peer address
	// is always the client.
	TrustedProxies []string
}

// Addr returns the listen address of the HTTP server
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Path string
}

// MailConfig configures the relay used for operator notifications
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
	TLSMode  string // none, starttls or tls
}

// Addr returns host:port of the mail relay
func (m MailConfig) Addr() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

type NotifierConfig struct {
	Enabled      bool
	Workers      int
	PollInterval time.Duration
	ClaimTimeout time.Duration
	BatchSize    int
}

// RateLimitConfig limits contact submissions per client IP
type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type GitHubConfig struct {
	Token string
}

// Load reads .env (if present) and PORTFOLIO_* environment variables.
// Environment variables win over .env values.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	v.SetEnvPrefix("portfolio")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host:           v.GetString("server.host"),
			Port:           v.GetInt("server.port"),
			Mode:           v.GetString("server.mode"),
			ReadTimeout:    v.GetDuration("server.read_timeout"),
			WriteTimeout:   v.GetDuration("server.write_timeout"),
			TrustedProxies: parseList(v.GetString("server.trusted_proxies")),
		},
		Database: DatabaseConfig{
			Path: v.GetString("database.path"),
		},
		Mail: MailConfig{
			Host:     v.GetString("mail.host"),
			Port:     v.GetInt("mail.port"),
			Username: v.GetString("mail.username"),
			Password: v.GetString("mail.password"),
			From:     v.GetString("mail.from"),
			To:       v.GetString("mail.to"),
			TLSMode:  strings.ToLower(v.GetString("mail.tls_mode")),
		},
		Notifier: NotifierConfig{
			Enabled:      v.GetBool("notifier.enabled"),
			Workers:      v.GetInt("notifier.workers"),
			PollInterval: v.GetDuration("notifier.poll_interval"),
			ClaimTimeout: v.GetDuration("notifier.claim_timeout"),
			BatchSize:    v.GetInt("notifier.batch_size"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: v.GetInt("ratelimit.requests_per_minute"),
			Burst:             v.GetInt("ratelimit.burst"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseList(v.GetString("cors.allowed_origins")),
		},
		Log: LogConfig{
			Level:      v.GetString("log.level"),
			File:       v.GetString("log.file"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAgeDays: v.GetInt("log.max_age_days"),
		},
		GitHub: GitHubConfig{
			Token: v.GetString("github.token"),
		},
	}

	// The sender defaults to the relay account, the recipient to the sender
	if cfg.Mail.From == "" {
		cfg.Mail.From = cfg.Mail.Username
	}
	if cfg.Mail.To == "" {
		cfg.Mail.To = cfg.Mail.From
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.trusted_proxies", "")
	v.SetDefault("database.path", "./portfolio.db")
	v.SetDefault("mail.host", "smtp.gmail.com")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.tls_mode", "starttls")
	v.SetDefault("notifier.enabled", true)
	v.SetDefault("notifier.workers", 1)
	v.SetDefault("notifier.poll_interval", "30s")
	v.SetDefault("notifier.claim_timeout", "5m")
	v.SetDefault("notifier.batch_size", 20)
	v.SetDefault("ratelimit.requests_per_minute", 5)
	v.SetDefault("ratelimit.burst", 3)
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}

// Validate checks settings that would otherwise fail at first use
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	switch c.Mail.TLSMode {
	case "none", "starttls", "tls":
	default:
		return fmt.Errorf("invalid mail.tls_mode %q (want none, starttls or tls)", c.Mail.TLSMode)
	}
	if c.Notifier.Enabled {
		if c.Mail.Username == "" || c.Mail.Password == "" {
			return fmt.Errorf("mail credentials not configured (set PORTFOLIO_MAIL_USERNAME and PORTFOLIO_MAIL_PASSWORD or disable the notifier)")
		}
		if c.Notifier.Workers <= 0 {
			return fmt.Errorf("notifier.workers must be positive")
		}
		if c.Notifier.PollInterval <= 0 {
			return fmt.Errorf("notifier.poll_interval must be positive")
		}
	}
	if c.RateLimit.RequestsPerMinute < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limit settings must not be negative")
	}
	return nil
}

// parseList splits a comma separated value, dropping blanks
func parseList(value string) []string {
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
