package config_test

import (
	"os"
	"testing"

	"lexdata-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SMTP_SERVER", "SMTP_PORT", "SENDER_EMAIL", "SENDER_PASSWORD", "DATABASE_URL"} {
		os.Unsetenv(key)
	}

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "LexData & Finance Solutions API", cfg.ProjectName)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPServer)
	assert.Equal(t, "587", cfg.SMTPPort)
	assert.Empty(t, cfg.SenderEmail)
	assert.Empty(t, cfg.SenderPassword)
	assert.Empty(t, cfg.DBUrl)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SMTP_SERVER", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SENDER_EMAIL", "sender@lexdatafinance.com")
	t.Setenv("SENDER_PASSWORD", "secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/lexdata")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "smtp.example.com", cfg.SMTPServer)
	assert.Equal(t, "2525", cfg.SMTPPort)
	assert.Equal(t, "sender@lexdatafinance.com", cfg.SenderEmail)
	assert.Equal(t, "secret", cfg.SenderPassword)
	assert.Equal(t, "postgres://localhost/lexdata", cfg.DBUrl)
}
