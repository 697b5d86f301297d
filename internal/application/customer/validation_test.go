package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

func TestBuildCustomer_RecortaEspaciosYNormalizaTipo(t *testing.T) {
	c, err := BuildCustomer(dto.CreateCustomerRequest{
		Name:         "  Ana ",
		Address:      " Rua A",
		BirthDate:    "2000-01-01 ",
		CustomerType: " pf",
		PersonalID:   " 123 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)
	assert.Equal(t, "Rua A", c.Address)
	assert.Equal(t, "2000-01-01", c.BirthDate)
	assert.Equal(t, entity.CustomerTypeIndividual, c.Type)
	assert.Equal(t, "123", c.TaxID())
}

func TestBuildCustomer_PJIgnoraCPF(t *testing.T) {
	c, err := BuildCustomer(dto.CreateCustomerRequest{
		Name:           "Acme",
		Address:        "Rua B",
		BirthDate:      "1999-12-31",
		CustomerType:   "PJ",
		PersonalID:     "111",
		OrganizationID: "222",
	})
	require.NoError(t, err)
	assert.Empty(t, c.PersonalID)
	assert.Equal(t, "222", c.TaxID())
}

func TestBuildCustomer_PJSinCNPJ(t *testing.T) {
	_, err := BuildCustomer(dto.CreateCustomerRequest{
		Name:         "Acme",
		Address:      "Rua B",
		BirthDate:    "1999-12-31",
		CustomerType: "PJ",
		PersonalID:   "111",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, FieldOrganizationID, verr.Field)
	assert.Equal(t, "el CNPJ es obligatorio para persona jurídica", verr.Error())
}
