package http

import (
	"embed"
	nethttp "net/http"

	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/clientes-api/internal/application/customer"
	"github.com/jhoicas/clientes-api/internal/application/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageView = "templates/index"

// Views motor de plantillas de la página; se pasa en fiber.Config.Views.
func Views() *html.Engine {
	return html.NewFileSystem(nethttp.FS(templateFS), ".html")
}

// pageData modelo de la página del formulario.
type pageData struct {
	Title       string
	Draft       dto.CreateCustomerRequest
	Success     string
	Error       string
	ListVisible bool
	ToggleLabel string
	Customers   []dto.CustomerResponse
}

// defaultDraft valores iniciales del formulario.
func defaultDraft() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{BirthDate: "2000-01-01", CustomerType: "PF"}
}

func newPageData(title string, draft dto.CreateCustomerRequest, view *customer.ListView) pageData {
	return pageData{
		Title:       title,
		Draft:       draft,
		ListVisible: view.Visibility.IsVisible(),
		ToggleLabel: view.Visibility.ToggleLabel(),
		Customers:   view.Customers,
	}
}
