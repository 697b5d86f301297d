package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// CustomerUseCase controlador del formulario: valida el borrador y delega en el repositorio.
type CustomerUseCase struct {
	repo    repository.CustomerRepository
	log     *logger.Logger
	metrics Recorder
}

// NewCustomerUseCase construye el caso de uso. log y rec pueden ser nil.
func NewCustomerUseCase(repo repository.CustomerRepository, log *logger.Logger, rec Recorder) *CustomerUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	return &CustomerUseCase{repo: repo, log: log, metrics: rec}
}

// Create valida y registra un cliente. Devuelve *domain.ValidationError sin tocar el
// repositorio si falta un campo, o un error domain.ErrPersistence si la inserción falla.
// No hay reintento: el usuario debe reenviar.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := BuildCustomer(in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			uc.metrics.IncValidationFailure(verr.Field)
		}
		return nil, err
	}

	id, err := uc.repo.Create(ctx, customer)
	if err != nil {
		uc.metrics.IncPersistenceFailure()
		uc.log.Error().Err(err).Str("customer_type", string(customer.Type)).Msg("registrar cliente")
		if !errors.Is(err, domain.ErrPersistence) {
			err = fmt.Errorf("%w: %w", domain.ErrPersistence, err)
		}
		return nil, err
	}
	customer.ID = id

	uc.metrics.IncCustomersCreated()
	uc.log.Info().Int64("customer_id", id).Str("customer_type", string(customer.Type)).Msg("cliente registrado")

	out := toCustomerResponse(customer)
	return &out, nil
}

// List devuelve todos los clientes registrados.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// View arma la sección de listado para el estado v. Con Hidden no consulta el repositorio.
func (uc *CustomerUseCase) View(ctx context.Context, v Visibility) (*ListView, error) {
	view := &ListView{Visibility: v}
	if !v.IsVisible() {
		return view, nil
	}
	list, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	view.Customers = list
	return view, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Address:      c.Address,
		BirthDate:    c.BirthDate,
		CustomerType: string(c.Type),
		TypeLabel:    c.Type.Label(),
		TaxID:        c.TaxID(),
	}
}
