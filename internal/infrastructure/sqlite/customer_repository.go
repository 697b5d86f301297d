package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS clientes (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	nome            TEXT NOT NULL,
	endereco        TEXT NOT NULL,
	data_nascimento TEXT NOT NULL,
	tipo_cliente    TEXT NOT NULL CHECK (tipo_cliente IN ('PF', 'PJ')),
	cpf             TEXT,
	cnpj            TEXT
)`

// CustomerRepo implementación de CustomerRepository sobre SQLite.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(db *sql.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// EnsureSchema crea la tabla clientes si no existe.
func (r *CustomerRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("crear tabla clientes: %w", err)
	}
	return nil
}

// Create inserta el cliente en una transacción y devuelve el id asignado.
// Ante cualquier fallo se hace rollback antes de devolver el error.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: begin transaction: %w", domain.ErrPersistence, err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO clientes (nome, endereco, data_nascimento, tipo_cliente, cpf, cnpj)
		VALUES (?, ?, ?, ?, ?, ?)`,
		customer.Name, customer.Address, customer.BirthDate, string(customer.Type),
		nullString(customer.PersonalID), nullString(customer.OrganizationID),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: insert customer: %w", domain.ErrPersistence, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: last insert id: %w", domain.ErrPersistence, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit transaction: %w", domain.ErrPersistence, err)
	}
	return id, nil
}

// ListAll devuelve todos los clientes (orden por id).
func (r *CustomerRepo) ListAll(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nome, endereco, data_nascimento, tipo_cliente, cpf, cnpj
		FROM clientes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var (
			c         entity.Customer
			typ       string
			cpf, cnpj sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.BirthDate, &typ, &cpf, &cnpj); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.Type = entity.CustomerType(typ)
		c.PersonalID = cpf.String
		c.OrganizationID = cnpj.String
		list = append(list, &c)
	}
	return list, rows.Err()
}

// nullString guarda NULL para el documento que no aplica.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
