package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "clientes.db", cfg.DB.Path)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 120*time.Minute, cfg.Session.Expiration)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "POSTGRES")
	v.Set("DB_HOST", "db")
	v.Set("DB_PORT", "5433")
	v.Set("DB_PASSWORD", "p@ss/word")
	v.Set("HTTP_PORT", "9090")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	// la contraseña se codifica en el DSN
	assert.Equal(t, "postgres://postgres:p%40ss%2Fword@db:5433/clientes?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_DatabaseURLTienePrioridad(t *testing.T) {
	v := viper.New()
	v.Set("DATABASE_URL", "postgres://u:p@remote:5432/x")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@remote:5432/x", cfg.DB.ConnectionString())
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "mysql")

	_, err := fromViper(v)
	assert.ErrorContains(t, err, "DB_DRIVER desconocido")
}

func TestFromViper_SQLiteSinRuta(t *testing.T) {
	v := viper.New()
	v.Set("DB_PATH", "")

	_, err := fromViper(v)
	assert.Error(t, err)
}
