package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cret")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "contactbook.db", cfg.DBURI)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, time.Duration(0), cfg.TokenTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, ":3000", cfg.Addr())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_URI", "postgres://u:p@localhost/contacts")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173,https://contacts.example.com")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, []string{"http://localhost:5173", "https://contacts.example.com"}, cfg.CORSAllowOrigins)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing secret",
			env:  map[string]string{"SECRET_KEY": ""},
		},
		{
			name: "unknown driver",
			env:  map[string]string{"SECRET_KEY": "x", "DB_DRIVER": "mongodb"},
		},
		{
			name: "weak bcrypt cost",
			env:  map[string]string{"SECRET_KEY": "x", "BCRYPT_COST": "4"},
		},
		{
			name: "negative ttl",
			env:  map[string]string{"SECRET_KEY": "x", "TOKEN_TTL": "-1m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := FromEnv()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
