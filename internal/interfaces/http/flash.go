package http

import (
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Cookie de mensajes flash: un mensaje de una sola lectura que sobrevive a una
// redirección. Valor en base64 URL-safe para soportar acentos.
const flashCookie = "flash"

// setFlash deja un mensaje flash para la próxima petición.
func setFlash(c *fiber.Ctx, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    base64.URLEncoding.EncodeToString([]byte(message)),
		Expires:  time.Now().Add(5 * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// PopFlash lee y borra el mensaje flash pendiente; "" si no hay.
func PopFlash(c *fiber.Ctx) string {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return ""
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	decoded, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return ""
	}
	return string(decoded)
}
