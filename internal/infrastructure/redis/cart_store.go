// Package redis implementa el almacén de carritos de sesión sobre Redis.
// El carrito viaja como JSON bajo la clave cart:<session id> con TTL;
// la serialización es una frontera explícita de este adaptador.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/olivosverdes/fruteria-api/internal/domain/cart"
	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
	"github.com/olivosverdes/fruteria-api/pkg/config"
)

var _ repository.CartStore = (*CartStore)(nil)

// CartStore guarda un carrito por sesión en Redis.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClient crea el cliente Redis desde la configuración y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewCartStore construye el almacén con el TTL de expiración del carrito.
func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Get devuelve el carrito de la sesión; un carrito vacío si la clave no existe.
// Un payload corrupto se trata como carrito vacío (se reescribe en el próximo Save).
func (s *CartStore) Get(ctx context.Context, sessionID string) (cart.Cart, error) {
	raw, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart.New(), nil
		}
		return cart.Cart{}, fmt.Errorf("get cart: %w", err)
	}
	var c cart.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return cart.New(), nil
	}
	if c.Items == nil {
		c.Items = make(map[string]cart.Entry)
	}
	return c, nil
}

// Save serializa y guarda el carrito, renovando el TTL.
func (s *CartStore) Save(ctx context.Context, sessionID string, c cart.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Delete elimina el carrito de la sesión.
func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
