package entity

import "github.com/shopspring/decimal"

// OrderDetail representa una línea de una orden: un producto con cantidad
// y el precio unitario capturado al momento de agregarlo al carrito.
// Las líneas pertenecen a su Order (se eliminan en cascada con ella).
type OrderDetail struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal devuelve cantidad × precio unitario.
func (d OrderDetail) Subtotal() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
}
