package xmlexport

import (
	"context"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

func TestExportCustomerListXML(t *testing.T) {
	out, err := NewEtreeExporter().ExportCustomerListXML(context.Background(), []*entity.Customer{
		{ID: 1, Name: "Ana & Cia", Address: "Rua A", BirthDate: "2000-01-01", Type: entity.CustomerTypeIndividual, PersonalID: "123.456.789-00"},
		{ID: 2, Name: "Acme", Address: "Rua B", BirthDate: "1990-05-10", Type: entity.CustomerTypeOrganization, OrganizationID: "12.345.678/0001-90"},
	})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("clientes")
	require.NotNil(t, root)
	assert.Equal(t, "2", root.SelectAttrValue("total", ""))

	items := root.SelectElements("cliente")
	require.Len(t, items, 2)

	assert.Equal(t, "PF", items[0].SelectAttrValue("tipo", ""))
	assert.Equal(t, "Ana & Cia", items[0].SelectElement("nome").Text())
	assert.Equal(t, "123.456.789-00", items[0].SelectElement("cpf").Text())
	assert.Nil(t, items[0].SelectElement("cnpj"))

	assert.Equal(t, "12.345.678/0001-90", items[1].SelectElement("cnpj").Text())
	assert.Nil(t, items[1].SelectElement("cpf"))
}

func TestExportCustomerListXML_Vacio(t *testing.T) {
	out, err := NewEtreeExporter().ExportCustomerListXML(context.Background(), nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<clientes total="0"/>`)
}
