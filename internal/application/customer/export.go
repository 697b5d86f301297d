package customer

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// ExportUseCase exporta el listado completo en PDF o XML.
type ExportUseCase struct {
	repo repository.CustomerRepository
	pdf  ListPDFGenerator
	xml  ListXMLExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(repo repository.CustomerRepository, pdf ListPDFGenerator, xml ListXMLExporter) *ExportUseCase {
	return &ExportUseCase{repo: repo, pdf: pdf, xml: xml}
}

// PDF genera el listado en PDF.
func (uc *ExportUseCase) PDF(ctx context.Context) ([]byte, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateCustomerListPDF(ctx, list)
}

// XML genera el listado en XML.
func (uc *ExportUseCase) XML(ctx context.Context) ([]byte, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.xml.ExportCustomerListXML(ctx, list)
}
