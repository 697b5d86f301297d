// Package sqlite implementa el almacén de clientes sobre un archivo SQLite local
// (driver puro Go modernc.org/sqlite, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite" // registra el driver "sqlite"
)

// Open abre (o crea) el archivo de base de datos y verifica la conexión.
// Se usa una única conexión compartida durante toda la vida del proceso.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// dsn arma la URI file: con la ruta escapada; un '#' o '?' en DB_PATH no debe
// cortar el nombre del archivo.
func dsn(path string) string {
	u := url.URL{
		Scheme:   "file",
		Opaque:   url.PathEscape(path),
		RawQuery: "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
	}
	return u.String()
}
