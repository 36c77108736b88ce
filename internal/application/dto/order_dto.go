package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConfirmOrderRequest entrada del POST de checkout. La tarjeta se exige pero no
// se valida ni se cobra (no hay pasarela de pago).
type ConfirmOrderRequest struct {
	CardNumber string `json:"card_number"`
}

// CheckoutView respuesta del GET de checkout: carrito + perfil + totales.
type CheckoutView struct {
	Cart    CartView         `json:"cart"`
	Profile *ProfileResponse `json:"profile,omitempty"`
}

// OrderLineResponse una línea de la orden persistida.
type OrderLineResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse cabecera + líneas de una orden.
type OrderResponse struct {
	ID       string              `json:"id"`
	BranchID string              `json:"branch_id"`
	Date     time.Time           `json:"date"`
	Total    decimal.Decimal     `json:"total"`
	Status   string              `json:"status"`
	Lines    []OrderLineResponse `json:"lines"`
}

// ConfirmOrderResponse resultado del checkout confirmado.
type ConfirmOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}
