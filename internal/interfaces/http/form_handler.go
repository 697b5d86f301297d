package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/customer"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
)

// Mensajes de los avisos de la página.
const (
	msgCreated        = "¡Cliente registrado con éxito!"
	msgMissingFields  = "Por favor, complete todos los campos obligatorios"
	msgPersistenceErr = "Ocurrió un error al intentar registrar"
)

// FormHandler sirve la página HTML del formulario de registro.
type FormHandler struct {
	uc    *customer.CustomerUseCase
	title string
}

// NewFormHandler construye el handler.
func NewFormHandler(uc *customer.CustomerUseCase, title string) *FormHandler {
	if title == "" {
		title = "Registro de clientes"
	}
	return &FormHandler{uc: uc, title: title}
}

// Index GET /
func (h *FormHandler) Index(c *fiber.Ctx) error {
	return h.page(c, fiber.StatusOK, defaultDraft(), "", "")
}

// Submit POST /clientes: valida, registra y vuelve a pintar la página con el aviso.
// Si falla, el borrador se conserva en el formulario.
func (h *FormHandler) Submit(c *fiber.Ctx) error {
	var draft dto.CreateCustomerRequest
	if err := c.BodyParser(&draft); err != nil {
		return h.page(c, fiber.StatusBadRequest, defaultDraft(), "", "formulario inválido")
	}

	_, err := h.uc.Create(c.UserContext(), draft)
	var verr *domain.ValidationError
	switch {
	case err == nil:
		return h.page(c, fiber.StatusOK, defaultDraft(), msgCreated, "")
	case errors.As(err, &verr):
		return h.page(c, fiber.StatusBadRequest, draft, "", msgMissingFields+": "+verr.Message)
	default:
		return h.page(c, fiber.StatusInternalServerError, draft, "", msgPersistenceErr+": "+err.Error())
	}
}

// Toggle POST /clientes/toggle: alterna el listado y redirige a la página.
func (h *FormHandler) Toggle(c *fiber.Ctx) error {
	if _, err := ToggleVisibility(c); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *FormHandler) page(c *fiber.Ctx, status int, draft dto.CreateCustomerRequest, success, failure string) error {
	view, err := h.uc.View(c.UserContext(), GetVisibility(c))
	if err != nil {
		// el formulario sigue usable aunque falle la lectura del listado
		view = &customer.ListView{Visibility: GetVisibility(c)}
		if failure == "" {
			failure = "no se pudo cargar el listado: " + err.Error()
		}
	}
	data := newPageData(h.title, draft, view)
	data.Success = success
	data.Error = failure
	return c.Status(status).Render(pageView, data)
}
