package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("JWT_SECRET", "")

	c := WithDefaults(Configuration{})

	assert.Equal(t, "8080", c.ApiPort)
	assert.Equal(t, EnvDevelopment, c.Environment)
	assert.Equal(t, "http://localhost:8080", c.AppURL)
	assert.Equal(t, "sqlite3", c.Database)
	assert.Equal(t, 7, c.Security.TokenValidDays)
	assert.Equal(t, 10, c.Security.ResetTokenValidMins)
	assert.Equal(t, 8, c.Security.MinPasswordLen)
	assert.Equal(t, "CHANGE_ME", c.Security.JwtSecret)
}

// Todo o bloco SMTP aceita override por env, porta inclusa.
func TestWithDefaults_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-vindo-do-env")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "mailer")
	t.Setenv("SMTP_PASS", "senha-smtp")
	t.Setenv("SMTP_FROM", "no-reply@example.com")

	var c Configuration
	c.Smtp.Port = 25
	c = WithDefaults(c)

	assert.Equal(t, "segredo-vindo-do-env", c.Security.JwtSecret)
	assert.Equal(t, "smtp.example.com", c.Smtp.Host)
	assert.Equal(t, 2525, c.Smtp.Port)
	assert.Equal(t, "mailer", c.Smtp.User)
	assert.Equal(t, "senha-smtp", c.Smtp.Pass)
	assert.Equal(t, "no-reply@example.com", c.Smtp.From)
}

func TestWithDefaults_BadSmtpPortIgnored(t *testing.T) {
	t.Setenv("SMTP_PORT", "nao-e-numero")

	var c Configuration
	c.Smtp.Port = 25
	c = WithDefaults(c)

	assert.Equal(t, 25, c.Smtp.Port)
}

func TestEnvironmentChecks(t *testing.T) {
	assert.True(t, Configuration{Environment: EnvDevelopment}.IsDevelopment())
	assert.False(t, Configuration{Environment: EnvDevelopment}.IsProduction())
	assert.True(t, Configuration{Environment: EnvProduction}.IsProduction())
	assert.False(t, Configuration{Environment: "staging"}.IsDevelopment())
	assert.False(t, Configuration{Environment: "staging"}.IsProduction())
}
