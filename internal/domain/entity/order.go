package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden.
const (
	OrderStatusPendiente = "Pendiente"
	OrderStatusPagado    = "Pagado"
)

// Order representa la cabecera de una orden de compra confirmada.
// Total es el subtotal del carrito al momento del checkout (sin costo de envío).
type Order struct {
	ID         string
	CustomerID string
	BranchID   string
	Date       time.Time
	Total      decimal.Decimal
	Status     string
	CreatedAt  time.Time
}
