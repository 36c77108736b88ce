package repository

import (
	"context"

	"github.com/olivosverdes/fruteria-api/internal/domain/cart"
)

// CartStore define el puerto del almacén de carritos por sesión.
// El carrito es estado efímero: la serialización y la expiración son asunto
// del adaptador (Redis en producción, memoria en tests y desarrollo).
// Lectura-modificación-escritura por petición, sin control optimista:
// ante dos escrituras concurrentes sobre la misma sesión gana la última.
type CartStore interface {
	// Get devuelve el carrito de la sesión; un carrito vacío si no existe.
	Get(ctx context.Context, sessionID string) (cart.Cart, error)
	Save(ctx context.Context, sessionID string, c cart.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
