package dto

// CreateCustomerRequest borrador del formulario (POST /api/customers o POST /clientes).
// Solo se usa el documento que corresponde a CustomerType (PF -> PersonalID, PJ -> OrganizationID).
type CreateCustomerRequest struct {
	Name           string `json:"name" form:"name"`
	Address        string `json:"address" form:"address"`
	BirthDate      string `json:"birth_date" form:"birth_date"`
	CustomerType   string `json:"customer_type" form:"customer_type"`
	PersonalID     string `json:"personal_id,omitempty" form:"personal_id"`
	OrganizationID string `json:"organization_id,omitempty" form:"organization_id"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	BirthDate    string `json:"birth_date"`
	CustomerType string `json:"customer_type"`
	TypeLabel    string `json:"type_label"`
	TaxID        string `json:"tax_id"`
}

// DisplayStateResponse estado del listado en la sesión actual.
type DisplayStateResponse struct {
	Visible bool `json:"visible"`
}
