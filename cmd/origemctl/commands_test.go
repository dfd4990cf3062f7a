package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/origem/origem-api/config"
	"github.com/origem/origem-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(func() *config.Config { return cfg })
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func adminConfig() *config.Config {
	return &config.Config{
		Admin: config.AdminConfig{
			JWTSecret:     strings.Repeat("k", 32),
			JWTIssuer:     "origem-api",
			TokenTTLHours: 1,
		},
	}
}

func TestTokenCmd_IssuesValidAdminToken(t *testing.T) {
	cfg := adminConfig()

	out, err := run(t, cfg, "token", "--email", "ops@origem.dev")
	require.NoError(t, err)

	claims, err := jwt.NewTokenManager(cfg.Admin.JWTSecret, "origem-api", 1).ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops@origem.dev", claims.Email)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
}

func TestTokenCmd_Errors(t *testing.T) {
	_, err := run(t, &config.Config{}, "token", "--email", "ops@origem.dev")
	assert.ErrorContains(t, err, "ADMIN_JWT_SECRET")

	short := adminConfig()
	short.Admin.JWTSecret = "short"
	_, err = run(t, short, "token", "--email", "ops@origem.dev")
	assert.ErrorContains(t, err, "at least 32")

	_, err = run(t, adminConfig(), "token")
	assert.ErrorContains(t, err, "--email")
}

func TestExportCmd_RequiresConfiguration(t *testing.T) {
	_, err := run(t, &config.Config{}, "export")
	assert.ErrorContains(t, err, "DATABASE_URL")

	cfg := &config.Config{Database: config.DatabaseConfig{URL: "postgres://localhost/origem"}}
	_, err = run(t, cfg, "export")
	assert.ErrorContains(t, err, "EXPORT_S3_ACCESS_KEY_ID")
}

func TestMigrateCmd_Validation(t *testing.T) {
	_, err := run(t, &config.Config{}, "migrate", "up")
	assert.ErrorContains(t, err, "DATABASE_URL")

	_, err = run(t, &config.Config{}, "migrate", "down", "--steps", "0")
	assert.ErrorContains(t, err, "--steps")
}
