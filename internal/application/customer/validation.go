package customer

import (
	"strings"
	"time"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// Campos del borrador, usados en ValidationError.Field y como etiqueta de métricas.
const (
	FieldName           = "name"
	FieldAddress        = "address"
	FieldBirthDate      = "birth_date"
	FieldCustomerType   = "customer_type"
	FieldPersonalID     = "personal_id"
	FieldOrganizationID = "organization_id"
)

// BuildCustomer valida el borrador y arma el cliente a persistir.
// PF exige CPF y PJ exige CNPJ; el documento del otro tipo se descarta.
// Cualquier otro tipo se rechaza, nunca se asume uno por defecto.
func BuildCustomer(in dto.CreateCustomerRequest) (*entity.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError(FieldName, "el nombre es obligatorio")
	}
	address := strings.TrimSpace(in.Address)
	if address == "" {
		return nil, domain.NewValidationError(FieldAddress, "la dirección es obligatoria")
	}
	birthDate := strings.TrimSpace(in.BirthDate)
	if birthDate == "" {
		return nil, domain.NewValidationError(FieldBirthDate, "la fecha de nacimiento es obligatoria")
	}
	if _, err := time.Parse(entity.BirthDateLayout, birthDate); err != nil {
		return nil, domain.NewValidationError(FieldBirthDate, "fecha de nacimiento inválida, use AAAA-MM-DD")
	}

	customerType, ok := entity.ParseCustomerType(strings.ToUpper(strings.TrimSpace(in.CustomerType)))
	if !ok {
		return nil, domain.NewValidationError(FieldCustomerType, "tipo de cliente inválido, use PF o PJ")
	}

	customer := &entity.Customer{
		Name:      name,
		Address:   address,
		BirthDate: birthDate,
		Type:      customerType,
	}
	switch customerType {
	case entity.CustomerTypeIndividual:
		customer.PersonalID = strings.TrimSpace(in.PersonalID)
		if customer.PersonalID == "" {
			return nil, domain.NewValidationError(FieldPersonalID, "el CPF es obligatorio para persona física")
		}
	case entity.CustomerTypeOrganization:
		customer.OrganizationID = strings.TrimSpace(in.OrganizationID)
		if customer.OrganizationID == "" {
			return nil, domain.NewValidationError(FieldOrganizationID, "el CNPJ es obligatorio para persona jurídica")
		}
	}
	return customer, nil
}
