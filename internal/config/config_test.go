package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
user = "hotel"
dbname = "hotel_booking"

[auth]
jwt_secret = "file-secret-value-123"

[booking]
initial_status = "pending"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MergesDefaultsAndFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "pending", cfg.Booking.InitialStatus)
	assert.Equal(t, 365, cfg.Booking.MaxNights)
	assert.Equal(t, NotifierDriverNone, cfg.Notifier.Driver)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret-value-456")
	t.Setenv("DB_PASSWORD", "p@ss")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "env-secret-value-456", cfg.Auth.JWTSecret)
	assert.Equal(t, "p@ss", cfg.Database.Password)
	assert.Contains(t, cfg.Database.DSN(), "sslmode=disable")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := Default()
		cfg.Database.User = "hotel"
		cfg.Database.DBName = "hotel_booking"
		cfg.Auth.JWTSecret = "0123456789abcdef"
		return cfg
	}

	require.NoError(t, base().Validate())

	cfg := base()
	cfg.Auth.JWTSecret = "short"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = base()
	cfg.Booking.InitialStatus = "completed"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = base()
	cfg.Notifier.Driver = NotifierDriverRabbitMQ
	cfg.Notifier.AMQPURL = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = base()
	cfg.Notifier.Driver = "sms"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
