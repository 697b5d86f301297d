package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// DB lo que el adaptador necesita de *pgxpool.Pool.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS clientes (
	id              BIGSERIAL PRIMARY KEY,
	nome            TEXT NOT NULL,
	endereco        TEXT NOT NULL,
	data_nascimento TEXT NOT NULL,
	tipo_cliente    TEXT NOT NULL CHECK (tipo_cliente IN ('PF', 'PJ')),
	cpf             TEXT,
	cnpj            TEXT
)`

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	db DB
	tx *TxRunner
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(db DB) *CustomerRepo {
	return &CustomerRepo{db: db, tx: NewTxRunner(db)}
}

// EnsureSchema crea la tabla clientes si no existe.
func (r *CustomerRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear tabla clientes: %w", err)
	}
	return nil
}

// Create inserta el cliente en una transacción y devuelve el id asignado.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) (int64, error) {
	var id int64
	err := r.tx.Run(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO clientes (nome, endereco, data_nascimento, tipo_cliente, cpf, cnpj)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`
		err := tx.QueryRow(ctx, query,
			customer.Name, customer.Address, customer.BirthDate, string(customer.Type),
			nullable(customer.PersonalID), nullable(customer.OrganizationID),
		).Scan(&id)
		if err != nil {
			if isConstraintViolation(err) {
				return fmt.Errorf("datos rechazados por la base de datos: %w", err)
			}
			return fmt.Errorf("insert customer: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return id, nil
}

// ListAll devuelve todos los clientes (orden por id).
func (r *CustomerRepo) ListAll(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.db.Query(ctx, `
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
			cpf, cnpj *string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.BirthDate, &typ, &cpf, &cnpj); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.Type = entity.CustomerType(typ)
		if cpf != nil {
			c.PersonalID = *cpf
		}
		if cnpj != nil {
			c.OrganizationID = *cnpj
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
