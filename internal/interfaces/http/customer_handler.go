package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/customer"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
)

// CustomerHandler maneja la API JSON de clientes.
type CustomerHandler struct {
	uc     *customer.CustomerUseCase
	export *customer.ExportUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *customer.CustomerUseCase, export *customer.ExportUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, export: export}
}

// Create godoc
// @Summary      Registrar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Borrador del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeCreateError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Produce      json
// @Success      200  {array}   dto.CustomerResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ExportPDF godoc
// @Summary      Exportar clientes en PDF
// @Tags         customers
// @Produce      application/pdf
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/customers/export.pdf [get]
func (h *CustomerHandler) ExportPDF(c *fiber.Ctx) error {
	out, err := h.export.PDF(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="clientes.pdf"`)
	return c.Send(out)
}

// ExportXML godoc
// @Summary      Exportar clientes en XML
// @Tags         customers
// @Produce      xml
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/customers/export.xml [get]
func (h *CustomerHandler) ExportXML(c *fiber.Ctx) error {
	out, err := h.export.XML(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="clientes.xml"`)
	return c.Send(out)
}

// ToggleDisplay godoc
// @Summary      Mostrar/ocultar el listado en la sesión actual
// @Tags         display
// @Produce      json
// @Success      200  {object}  dto.DisplayStateResponse
// @Router       /api/display/toggle [post]
func (h *CustomerHandler) ToggleDisplay(c *fiber.Ctx) error {
	v, err := ToggleVisibility(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SESSION", Message: err.Error()})
	}
	return c.JSON(dto.DisplayStateResponse{Visible: v.IsVisible()})
}

// Display godoc
// @Summary      Estado del listado en la sesión actual
// @Tags         display
// @Produce      json
// @Success      200  {object}  dto.DisplayStateResponse
// @Router       /api/display [get]
func (h *CustomerHandler) Display(c *fiber.Ctx) error {
	return c.JSON(dto.DisplayStateResponse{Visible: GetVisibility(c).IsVisible()})
}

func writeCreateError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Message})
	case errors.Is(err, domain.ErrPersistence):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
