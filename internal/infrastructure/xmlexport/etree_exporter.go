// Package xmlexport serializa el listado de clientes en XML.
package xmlexport

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/clientes-api/internal/application/customer"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

var _ customer.ListXMLExporter = (*EtreeExporter)(nil)

// EtreeExporter implementa customer.ListXMLExporter.
//
//	<clientes total="1">
//	  <cliente id="1" tipo="PF">
//	    <nome>Ana</nome>
//	    <endereco>Rua A</endereco>
//	    <data_nascimento>2000-01-01</data_nascimento>
//	    <cpf>123.456.789-00</cpf>
//	  </cliente>
//	</clientes>
type EtreeExporter struct{}

// NewEtreeExporter construye el exportador.
func NewEtreeExporter() *EtreeExporter { return &EtreeExporter{} }

// ExportCustomerListXML genera el documento con un nodo por cliente.
func (e *EtreeExporter) ExportCustomerListXML(_ context.Context, customers []*entity.Customer) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("clientes")
	root.CreateAttr("total", strconv.Itoa(len(customers)))
	for _, c := range customers {
		el := root.CreateElement("cliente")
		el.CreateAttr("id", strconv.FormatInt(c.ID, 10))
		el.CreateAttr("tipo", string(c.Type))
		el.CreateElement("nome").SetText(c.Name)
		el.CreateElement("endereco").SetText(c.Address)
		el.CreateElement("data_nascimento").SetText(c.BirthDate)
		// solo el documento activo
		if c.Type == entity.CustomerTypeOrganization {
			el.CreateElement("cnpj").SetText(c.OrganizationID)
		} else {
			el.CreateElement("cpf").SetText(c.PersonalID)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar clientes: %w", err)
	}
	return out, nil
}
