package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/clientes-api/internal/application/customer"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *customer.CustomerUseCase
	ExportUC   *customer.ExportUseCase
	Sessions   *session.Store
	Gatherer   prometheus.Gatherer // nil = sin /metrics
	Title      string
}

// Router registra la página del formulario, la API y /metrics.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	withSession := SessionMiddleware(deps.Sessions)

	// Página (formulario + listado)
	formHandler := NewFormHandler(deps.CustomerUC, deps.Title)
	app.Get("/", withSession, formHandler.Index)
	app.Post("/clientes", withSession, formHandler.Submit)
	app.Post("/clientes/toggle", withSession, formHandler.Toggle)

	// API JSON
	api := app.Group("/api")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.ExportUC)
	customers := api.Group("/customers")
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/export.pdf", customerHandler.ExportPDF)
	customers.Get("/export.xml", customerHandler.ExportXML)

	display := api.Group("/display", withSession)
	display.Get("/", customerHandler.Display)
	display.Post("/toggle", customerHandler.ToggleDisplay)
}
