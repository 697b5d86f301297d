package customer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/jhoicas/clientes-api/internal/application/customer"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository/mocks"
	"github.com/jhoicas/clientes-api/pkg/metrics"
)

type CustomerUseCaseSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocks.MockCustomerRepository
	metrics *metrics.Metrics
	uc      *customer.CustomerUseCase
}

func TestCustomerUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CustomerUseCaseSuite))
}

func (s *CustomerUseCaseSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockCustomerRepository(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.uc = customer.NewCustomerUseCase(s.repo, nil, s.metrics)
}

func anaDraft() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		Name:         "Ana",
		Address:      "Rua A",
		BirthDate:    "2000-01-01",
		CustomerType: "PF",
		PersonalID:   "123.456.789-00",
	}
}

func (s *CustomerUseCaseSuite) TestCreate_PersonaFisica() {
	ctx := context.Background()
	s.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *entity.Customer) (int64, error) {
		s.Equal("Ana", c.Name)
		s.Equal(entity.CustomerTypeIndividual, c.Type)
		s.Equal("123.456.789-00", c.PersonalID)
		s.Empty(c.OrganizationID)
		return 1, nil
	})

	out, err := s.uc.Create(ctx, anaDraft())
	s.Require().NoError(err)
	s.Equal(int64(1), out.ID)
	s.Equal("123.456.789-00", out.TaxID)
	s.Equal("PF", out.CustomerType)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.CustomersCreated))
}

func (s *CustomerUseCaseSuite) TestCreate_PersonaJuridica() {
	ctx := context.Background()
	draft := dto.CreateCustomerRequest{
		Name:           "Acme Ltda",
		Address:        "Av. Paulista 1000",
		BirthDate:      "1990-05-10",
		CustomerType:   "PJ",
		PersonalID:     "ignorado",
		OrganizationID: "12.345.678/0001-90",
	}
	s.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *entity.Customer) (int64, error) {
		s.Equal("12.345.678/0001-90", c.OrganizationID)
		s.Empty(c.PersonalID, "el CPF no se guarda para persona jurídica")
		return 9, nil
	}).Times(1)

	out, err := s.uc.Create(ctx, draft)
	s.Require().NoError(err)
	s.Equal("12.345.678/0001-90", out.TaxID)
}

func (s *CustomerUseCaseSuite) TestCreate_ValidacionNoLlamaAlRepositorio() {
	cases := []struct {
		name  string
		edit  func(*dto.CreateCustomerRequest)
		field string
	}{
		{"nombre vacío", func(d *dto.CreateCustomerRequest) { d.Name = "" }, customer.FieldName},
		{"nombre solo espacios", func(d *dto.CreateCustomerRequest) { d.Name = "   " }, customer.FieldName},
		{"dirección vacía", func(d *dto.CreateCustomerRequest) { d.Address = "" }, customer.FieldAddress},
		{"fecha vacía", func(d *dto.CreateCustomerRequest) { d.BirthDate = "" }, customer.FieldBirthDate},
		{"fecha inválida", func(d *dto.CreateCustomerRequest) { d.BirthDate = "01/01/2000" }, customer.FieldBirthDate},
		{"PF sin CPF", func(d *dto.CreateCustomerRequest) { d.PersonalID = "" }, customer.FieldPersonalID},
		{"PJ sin CNPJ", func(d *dto.CreateCustomerRequest) {
			d.CustomerType = "PJ"
			d.OrganizationID = ""
		}, customer.FieldOrganizationID},
		{"tipo desconocido", func(d *dto.CreateCustomerRequest) { d.CustomerType = "XX" }, customer.FieldCustomerType},
		{"tipo vacío", func(d *dto.CreateCustomerRequest) { d.CustomerType = "" }, customer.FieldCustomerType},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			draft := anaDraft()
			tc.edit(&draft)

			// sin EXPECT: cualquier llamada al repo hace fallar el test
			out, err := s.uc.Create(context.Background(), draft)
			s.Nil(out)
			s.Require().Error(err)
			s.ErrorIs(err, domain.ErrInvalidInput)

			var verr *domain.ValidationError
			s.Require().ErrorAs(err, &verr)
			s.Equal(tc.field, verr.Field)
		})
	}
	s.Equal(float64(2), testutil.ToFloat64(s.metrics.ValidationFailures.WithLabelValues(customer.FieldName)))
	s.Equal(float64(2), testutil.ToFloat64(s.metrics.ValidationFailures.WithLabelValues(customer.FieldBirthDate)))
}

func (s *CustomerUseCaseSuite) TestCreate_ErrorDePersistencia() {
	ctx := context.Background()
	s.repo.EXPECT().Create(ctx, gomock.Any()).Return(int64(0), errors.New("database is locked"))

	out, err := s.uc.Create(ctx, anaDraft())
	s.Nil(out)
	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrPersistence)
	s.Contains(err.Error(), "database is locked")
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.PersistenceFailures))
	s.Zero(testutil.ToFloat64(s.metrics.CustomersCreated))
}

func (s *CustomerUseCaseSuite) TestList() {
	ctx := context.Background()
	s.repo.EXPECT().ListAll(ctx).Return([]*entity.Customer{
		{ID: 1, Name: "Ana", Address: "Rua A", BirthDate: "2000-01-01", Type: entity.CustomerTypeIndividual, PersonalID: "111"},
		{ID: 2, Name: "Acme", Address: "Rua B", BirthDate: "1990-01-01", Type: entity.CustomerTypeOrganization, OrganizationID: "222"},
	}, nil)

	list, err := s.uc.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("111", list[0].TaxID)
	s.Equal("222", list[1].TaxID)
	s.Equal("Persona jurídica", list[1].TypeLabel)
}

func (s *CustomerUseCaseSuite) TestView_OcultoNoConsulta() {
	view, err := s.uc.View(context.Background(), customer.Hidden)
	s.Require().NoError(err)
	s.False(view.Visibility.IsVisible())
	s.Nil(view.Customers)
}

func (s *CustomerUseCaseSuite) TestView_VisibleSinClientes() {
	ctx := context.Background()
	s.repo.EXPECT().ListAll(ctx).Return(nil, nil)

	view, err := s.uc.View(ctx, customer.Visible)
	s.Require().NoError(err)
	s.True(view.Visibility.IsVisible())
	s.Empty(view.Customers)
}
