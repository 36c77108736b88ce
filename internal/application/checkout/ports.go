package checkout

import (
	"context"

	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
)

// TxRunner puerto de transacción para el checkout: la cabecera de la orden y
// todas sus líneas se escriben juntas o ninguna.
type TxRunner interface {
	RunCheckout(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}
