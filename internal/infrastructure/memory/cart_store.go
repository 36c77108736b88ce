// Package memory implementa el almacén de carritos en memoria de proceso.
// Respaldo para desarrollo sin Redis y para tests; no sobrevive reinicios.
package memory

import (
	"context"
	"sync"

	"github.com/olivosverdes/fruteria-api/internal/domain/cart"
	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
)

var _ repository.CartStore = (*CartStore)(nil)

// CartStore guarda un carrito por sesión en un mapa protegido por mutex.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]cart.Cart
}

// NewCartStore construye el almacén vacío.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]cart.Cart)}
}

// Get devuelve una copia del carrito de la sesión; vacío si no existe.
func (s *CartStore) Get(_ context.Context, sessionID string) (cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.carts[sessionID]
	if !ok {
		return cart.New(), nil
	}
	return copyCart(stored), nil
}

// Save guarda una copia del carrito.
func (s *CartStore) Save(_ context.Context, sessionID string, c cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = copyCart(c)
	return nil
}

// Delete elimina el carrito de la sesión.
func (s *CartStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

// copyCart clona el mapa para que el llamador no comparta estado con el almacén,
// igual que con un backend serializado.
func copyCart(c cart.Cart) cart.Cart {
	out := cart.New()
	for id, entry := range c.Items {
		out.Items[id] = entry
	}
	return out
}
