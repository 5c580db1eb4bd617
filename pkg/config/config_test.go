package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORTFOLIO_MAIL_USERNAME", "owner@example.com")
	t.Setenv("PORTFOLIO_MAIL_PASSWORD", "app-password")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Empty(t, cfg.Server.TrustedProxies, "no proxy is trusted by default")
	assert.Equal(t, "./portfolio.db", cfg.Database.Path)
	assert.Equal(t, "smtp.gmail.com:587", cfg.Mail.Addr())
	assert.Equal(t, "starttls", cfg.Mail.TLSMode)
	assert.Equal(t, "owner@example.com", cfg.Mail.From, "sender falls back to the relay account")
	assert.Equal(t, "owner@example.com", cfg.Mail.To, "operator falls back to the sender")
	assert.True(t, cfg.Notifier.Enabled)
	assert.Equal(t, 1, cfg.Notifier.Workers)
	assert.Equal(t, 30*time.Second, cfg.Notifier.PollInterval)
	assert.Equal(t, 5*time.Minute, cfg.Notifier.ClaimTimeout)
	assert.Equal(t, 5, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORTFOLIO_SERVER_PORT", "9090")
	t.Setenv("PORTFOLIO_DATABASE_PATH", "/tmp/messages.db")
	t.Setenv("PORTFOLIO_MAIL_HOST", "mail.example.com")
	t.Setenv("PORTFOLIO_MAIL_PORT", "465")
	t.Setenv("PORTFOLIO_MAIL_TLS_MODE", "TLS")
	t.Setenv("PORTFOLIO_MAIL_USERNAME", "relay")
	t.Setenv("PORTFOLIO_MAIL_PASSWORD", "secret")
	t.Setenv("PORTFOLIO_MAIL_FROM", "site@example.com")
	t.Setenv("PORTFOLIO_MAIL_TO", "me@example.com")
	t.Setenv("PORTFOLIO_NOTIFIER_WORKERS", "3")
	t.Setenv("PORTFOLIO_NOTIFIER_POLL_INTERVAL", "1m")
	t.Setenv("PORTFOLIO_CORS_ALLOWED_ORIGINS", "https://a.dev, https://b.dev,")
	t.Setenv("PORTFOLIO_GITHUB_TOKEN", "ghp_test")
	t.Setenv("PORTFOLIO_SERVER_TRUSTED_PROXIES", "10.0.0.0/8, 127.0.0.1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/messages.db", cfg.Database.Path)
	assert.Equal(t, "mail.example.com:465", cfg.Mail.Addr())
	assert.Equal(t, "tls", cfg.Mail.TLSMode)
	assert.Equal(t, "site@example.com", cfg.Mail.From)
	assert.Equal(t, "me@example.com", cfg.Mail.To)
	assert.Equal(t, 3, cfg.Notifier.Workers)
	assert.Equal(t, time.Minute, cfg.Notifier.PollInterval)
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "ghp_test", cfg.GitHub.Token)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.Server.TrustedProxies)
}

func TestLoadRequiresMailCredentialsWhenNotifierEnabled(t *testing.T) {
	t.Setenv("PORTFOLIO_MAIL_USERNAME", "")
	t.Setenv("PORTFOLIO_MAIL_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("PORTFOLIO_NOTIFIER_ENABLED", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Notifier.Enabled)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Path: "x.db"},
			Mail:     MailConfig{TLSMode: "none"},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "Valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "Bad port", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "Empty database path", mutate: func(c *Config) { c.Database.Path = "" }, wantErr: true},
		{name: "Unknown TLS mode", mutate: func(c *Config) { c.Mail.TLSMode = "ssl" }, wantErr: true},
		{name: "Negative burst", mutate: func(c *Config) { c.RateLimit.Burst = -1 }, wantErr: true},
		{
			name: "Notifier without workers",
			mutate: func(c *Config) {
				c.Notifier = NotifierConfig{Enabled: true, PollInterval: time.Second}
				c.Mail.Username, c.Mail.Password = "u", "p"
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parseList(" a ,,b "))
	assert.Empty(t, parseList(""))
}
