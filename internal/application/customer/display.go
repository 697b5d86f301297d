package customer

import "github.com/jhoicas/clientes-api/internal/application/dto"

// Visibility estado del listado de clientes en una sesión. El valor cero es Hidden.
type Visibility int

const (
	Hidden Visibility = iota
	Visible
)

// VisibilityOf convierte el flag guardado en sesión.
func VisibilityOf(visible bool) Visibility {
	if visible {
		return Visible
	}
	return Hidden
}

// Toggle invierte el estado, sin importar si hay datos.
func (v Visibility) Toggle() Visibility {
	if v == Visible {
		return Hidden
	}
	return Visible
}

// IsVisible indica si el listado debe mostrarse.
func (v Visibility) IsVisible() bool { return v == Visible }

// ToggleLabel texto del botón según el estado actual.
func (v Visibility) ToggleLabel() string {
	if v == Visible {
		return "Ocultar clientes"
	}
	return "Mostrar clientes"
}

func (v Visibility) String() string {
	if v == Visible {
		return "visible"
	}
	return "hidden"
}

// ListView lo que la página necesita para pintar la sección de listado.
type ListView struct {
	Visibility Visibility
	Customers  []dto.CustomerResponse
}
