package customer

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// Recorder métricas del registro (lo implementa *metrics.Metrics).
type Recorder interface {
	IncCustomersCreated()
	IncValidationFailure(field string)
	IncPersistenceFailure()
}

// ListPDFGenerator genera el listado de clientes en PDF.
type ListPDFGenerator interface {
	GenerateCustomerListPDF(ctx context.Context, customers []*entity.Customer) ([]byte, error)
}

// ListXMLExporter serializa el listado de clientes en XML.
type ListXMLExporter interface {
	ExportCustomerListXML(ctx context.Context, customers []*entity.Customer) ([]byte, error)
}

type nopRecorder struct{}

func (nopRecorder) IncCustomersCreated()        {}
func (nopRecorder) IncValidationFailure(string) {}
func (nopRecorder) IncPersistenceFailure()      {}
