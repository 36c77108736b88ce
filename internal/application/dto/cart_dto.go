package dto

import "github.com/shopspring/decimal"

// AddToCartResponse respuesta de agregar al carrito.
type AddToCartResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Quantity int    `json:"quantity"`
}

// AdjustCartResponse respuesta de ajustar cantidad: incluye los totales
// recalculados para que el cliente actualice la vista sin recargar.
type AdjustCartResponse struct {
	Success         bool            `json:"success"`
	Message         string          `json:"message"`
	NewQuantity     int             `json:"new_quantity"`
	NewItemSubtotal decimal.Decimal `json:"new_item_subtotal"`
	NewSubtotal     decimal.Decimal `json:"new_subtotal"`
	NewTotalFinal   decimal.Decimal `json:"new_total_final"`
}

// RemoveFromCartResponse respuesta de eliminar del carrito con totales recalculados.
type RemoveFromCartResponse struct {
	Success       bool            `json:"success"`
	Message       string          `json:"message"`
	NewSubtotal   decimal.Decimal `json:"new_subtotal"`
	NewTotalFinal decimal.Decimal `json:"new_total_final"`
}

// CartItemView una línea del carrito renderizada (producto ya resuelto).
type CartItemView struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ImageURL    string          `json:"image_url,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CartView el carrito completo con totales. TotalFinal es 0 con carrito vacío
// (el costo de envío no se cobra sobre un carrito vacío).
type CartView struct {
	Items       []CartItemView  `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	TotalFinal  decimal.Decimal `json:"total_final"`
}
