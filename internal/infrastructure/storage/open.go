// Package storage abre el almacén de clientes configurado (SQLite o PostgreSQL).
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/clientes-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/clientes-api/pkg/config"
)

// Open conecta con el almacén, crea la tabla si hace falta y devuelve el repositorio
// junto con la función para cerrar la conexión.
func Open(ctx context.Context, cfg config.DBConfig) (repository.CustomerRepository, func(), error) {
	var (
		repo    repository.CustomerRepository
		closeFn func()
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		repo = sqlite.NewCustomerRepository(db)
		closeFn = func() { _ = db.Close() }
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		repo = postgres.NewCustomerRepository(pool)
		closeFn = pool.Close
	default:
		return nil, nil, fmt.Errorf("storage: driver desconocido %q", cfg.Driver)
	}

	if err := repo.EnsureSchema(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}
	return repo, closeFn, nil
}
