package repository

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

//go:generate mockgen -source=customer_repository.go -destination=mocks/mock_customer_repository.go -package=mocks

// CustomerRepository define el puerto de persistencia para Customer.
// Create corre en una transacción propia: si falla no queda ningún registro parcial
// y el error satisface errors.Is(err, domain.ErrPersistence).
type CustomerRepository interface {
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, customer *entity.Customer) (int64, error)
	ListAll(ctx context.Context) ([]*entity.Customer, error)
}
