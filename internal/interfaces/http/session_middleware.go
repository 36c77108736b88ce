package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Cookie y local del identificador de sesión del carrito. La sesión es
// independiente del login: visitantes anónimos también tienen carrito.
const (
	SessionCookie = "sess_id"
	LocalSession  = "session_id"
)

// SessionMiddleware asegura un identificador de sesión por visitante: lee la
// cookie sess_id o emite una nueva con un UUID. El carrito se indexa por él.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessID := c.Cookies(SessionCookie)
		if sessID == "" {
			sessID = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sessID,
				Expires:  time.Now().Add(7 * 24 * time.Hour),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(LocalSession, sessID)
		return c.Next()
	}
}

// GetSessionID devuelve el identificador de sesión del contexto.
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSession)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// isAJAX informa si la petición se marcó como XMLHttpRequest. Las operaciones
// del carrito responden JSON a peticiones AJAX y redirigen al resto.
func isAJAX(c *fiber.Ctx) bool {
	return c.Get("X-Requested-With") == "XMLHttpRequest"
}
