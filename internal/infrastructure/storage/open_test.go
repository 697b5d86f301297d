package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/pkg/config"
)

func TestOpen_SQLiteCreaTabla(t *testing.T) {
	cfg := config.DBConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "c.db")}

	repo, closeFn, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, _, err := Open(context.Background(), config.DBConfig{Driver: "mysql"})
	assert.ErrorContains(t, err, "driver desconocido")
}
