// Package pdf genera el listado de clientes registrados en PDF (A4).
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Clientes registrados      │  Fecha + total          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Dirección | Nacimiento | Tipo | CPF/CNPJ   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/clientes-api/internal/application/customer"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

var _ customer.ListPDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa customer.ListPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{now: time.Now}
}

// GenerateCustomerListPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateCustomerListPDF(_ context.Context, customers []*entity.Customer) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Clientes registrados", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.now(), len(customers)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	if len(customers) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Ningún cliente registrado todavía.", props.Text{
				Size: 9, Align: align.Center, Top: 3, Color: colorGray,
			}),
		)))
	}
	for _, r := range tableDetailRows(customers) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Documento generado automáticamente a partir del registro de clientes.", props.Text{
			Size: 6.5, Color: colorGray, Top: 2,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de emisión + total (der).
func headerRow(now time.Time, total int) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Clientes registrados", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Total: %d", total), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

// tableHeaderRow: mismas columnas que la tabla de la página, sin el id interno.
func tableHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Nombre", 3),
		h("Dirección", 3),
		h("Fecha de nacimiento", 2),
		h("Tipo", 2),
		h("CPF/CNPJ", 2),
	)
}

// tableDetailRows: una fila por cliente.
func tableDetailRows(customers []*entity.Customer) []core.Row {
	cell := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Top: 1, Left: 1, Right: 1}))
	}
	result := make([]core.Row, 0, len(customers))
	for _, c := range customers {
		result = append(result, row.New(7).Add(
			cell(c.Name, 3),
			cell(c.Address, 3),
			cell(formatBirthDate(c.BirthDate), 2),
			cell(c.Type.Label(), 2),
			cell(c.TaxID(), 2),
		))
	}
	return result
}

// formatBirthDate pasa de AAAA-MM-DD a DD/MM/AAAA; si no parsea deja el texto tal cual.
func formatBirthDate(s string) string {
	t, err := time.Parse(entity.BirthDateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}
