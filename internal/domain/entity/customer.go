package entity

// CustomerType clasificación del cliente: persona física (CPF) o jurídica (CNPJ).
type CustomerType string

const (
	CustomerTypeIndividual   CustomerType = "PF"
	CustomerTypeOrganization CustomerType = "PJ"
)

// BirthDateLayout formato con el que se guarda la fecha de nacimiento.
const BirthDateLayout = "2006-01-02"

// ParseCustomerType devuelve el tipo si es uno de los valores conocidos.
func ParseCustomerType(s string) (CustomerType, bool) {
	switch CustomerType(s) {
	case CustomerTypeIndividual, CustomerTypeOrganization:
		return CustomerType(s), true
	}
	return "", false
}

// Label nombre legible del tipo para listados.
func (t CustomerType) Label() string {
	switch t {
	case CustomerTypeIndividual:
		return "Persona física"
	case CustomerTypeOrganization:
		return "Persona jurídica"
	default:
		return string(t)
	}
}

// Customer representa un cliente registrado.
// PersonalID (CPF) y OrganizationID (CNPJ) son excluyentes: solo uno tiene valor, según Type.
type Customer struct {
	ID             int64
	Name           string
	Address        string
	BirthDate      string // YYYY-MM-DD
	Type           CustomerType
	PersonalID     string
	OrganizationID string
}

// TaxID devuelve el documento activo (CPF o CNPJ).
func (c *Customer) TaxID() string {
	if c.Type == CustomerTypeOrganization {
		return c.OrganizationID
	}
	return c.PersonalID
}
