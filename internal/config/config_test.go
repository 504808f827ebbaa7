package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
[database]
user = "rental"
dbname = "rental_service"

[auth_service]
url = "http://localhost:8081"
`

func TestLoad_DefaultsApplied(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 8, cfg.Booking.WeeklyQuota)
	assert.Equal(t, "America/Sao_Paulo", cfg.Booking.Timezone)
	assert.Equal(t, "rental-service", cfg.Metrics.ServiceName)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[server]
http_port = 9090

[booking]
weekly_quota = 3
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 3, cfg.Booking.WeeklyQuota)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("RENTAL_DB_PASSWORD", "secret-from-env")
	t.Setenv("RENTAL_DB_HOST", "db.internal")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "secret-from-env", cfg.Database.Password)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing database credentials",
			content: `
[auth_service]
url = "http://localhost:8081"
`,
		},
		{
			name: "non-positive weekly quota",
			content: minimalConfig + `
[booking]
weekly_quota = 0
`,
		},
		{
			name: "events enabled without broker url",
			content: minimalConfig + `
[events]
enabled = true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432,
		User: "rental", Password: "pw",
		DBName: "rental_service", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=rental password=pw dbname=rental_service sslmode=disable",
		d.DSN())
}
