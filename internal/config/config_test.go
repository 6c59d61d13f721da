package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/zach-dev-api/internal/contact"
)

func TestLoadDefaults(t *testing.T) {
	for _, env := range envBindings {
		t.Setenv(env, "")
	}

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Port)
	assert.Equal(t, "portfolio.db", cfg.DatabaseURL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.CORSOrigins)
	assert.Equal(t, "smtp", cfg.Contact.Provider)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, "587", cfg.SMTP.Port)
	assert.False(t, cfg.Admin.Enabled)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "/var/lib/portfolio/content.db")
	t.Setenv("CORS_ORIGINS", "https://example.com,https://www.example.com")
	t.Setenv("TO_EMAIL", "owner@example.com")
	t.Setenv("SMTP_USER", "bot@example.com")
	t.Setenv("ADMIN_ENABLED", "true")
	t.Setenv("ADMIN_TOKEN", "abc")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/var/lib/portfolio/content.db", cfg.DatabaseURL)
	assert.Equal(t, []string{"https://example.com", "https://www.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "owner@example.com", cfg.Contact.To)
	assert.Equal(t, "bot@example.com", cfg.SMTP.User)
	assert.True(t, cfg.Admin.Enabled)
	assert.Equal(t, "abc", cfg.Admin.Token)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "7000"
contact:
  provider: ses
  to: owner@example.com
  from: site@example.com
`), 0o644))

	t.Setenv("PORT", "7100")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "7100", cfg.Port, "environment wins over the file")
	assert.Equal(t, "ses", cfg.Contact.Provider)
	assert.Equal(t, "site@example.com", cfg.Contact.From)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultsBuildMailer(t *testing.T) {
	for _, env := range envBindings {
		t.Setenv(env, "")
	}

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	mailer, err := contact.New(cfg.Mailer())
	require.NoError(t, err, "an unconfigured contact form must not block startup")
	assert.IsType(t, &contact.SMTPMailer{}, mailer)
}

func TestMailerConfig(t *testing.T) {
	t.Setenv("CONTACT_PROVIDER", "ses")
	t.Setenv("TO_EMAIL", "owner@example.com")
	t.Setenv("FROM_EMAIL", "site@example.com")
	t.Setenv("AWS_REGION", "eu-central-1")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	m := cfg.Mailer()
	assert.Equal(t, "ses", m.Provider)
	assert.Equal(t, "owner@example.com", m.To)
	assert.Equal(t, "site@example.com", m.From)
	assert.Equal(t, "eu-central-1", m.AWSRegion)
	assert.Equal(t, "smtp.gmail.com", m.SMTPHost)
}
