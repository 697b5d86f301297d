package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/clientes-api/internal/application/customer"
	"github.com/jhoicas/clientes-api/internal/application/dto"
)

// Locals keys y claves de sesión.
const (
	LocalSession    = "session"
	sessionKeyShown = "show_clients"
)

// NewSessionStore sesiones en memoria con cookie clientes_session.
func NewSessionStore(expiration time.Duration) *session.Store {
	return session.New(session.Config{
		Expiration:     expiration,
		KeyLookup:      "cookie:clientes_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// SessionMiddleware carga la sesión del formulario en c.Locals.
// El estado vive en memoria del proceso: se pierde al reiniciar.
func SessionMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SESSION", Message: "no se pudo cargar la sesión"})
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// GetVisibility devuelve el estado del listado de la sesión actual (Hidden si no hay sesión).
func GetVisibility(c *fiber.Ctx) customer.Visibility {
	sess, ok := c.Locals(LocalSession).(*session.Session)
	if !ok {
		return customer.Hidden
	}
	shown, _ := sess.Get(sessionKeyShown).(bool)
	return customer.VisibilityOf(shown)
}

// ToggleVisibility invierte el estado del listado y lo guarda en la sesión.
func ToggleVisibility(c *fiber.Ctx) (customer.Visibility, error) {
	next := GetVisibility(c).Toggle()
	sess, ok := c.Locals(LocalSession).(*session.Session)
	if !ok {
		return next, fiber.NewError(fiber.StatusInternalServerError, "sesión no inicializada")
	}
	sess.Set(sessionKeyShown, next.IsVisible())
	if err := sess.Save(); err != nil {
		return next, err
	}
	return next, nil
}
