// Package cart define el carrito de sesión como tipo de valor explícito:
// un mapa producto → {cantidad, precio capturado} con sus operaciones y totales.
// La serialización hacia el almacén de sesiones es responsabilidad del adaptador.
package cart

import "github.com/shopspring/decimal"

// Entry es una línea del carrito. UnitPrice es el precio efectivo capturado al
// momento de agregar: el carrito es una foto de precios, no una cotización viva.
type Entry struct {
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal devuelve cantidad × precio capturado.
func (e Entry) Subtotal() decimal.Decimal {
	return e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Cart mapea id de producto → línea. El mapa vacío y el nil se comportan igual
// para lectura; New devuelve siempre un mapa utilizable para escritura.
type Cart struct {
	Items map[string]Entry `json:"items"`
}

// New crea un carrito vacío listo para mutar.
func New() Cart {
	return Cart{Items: make(map[string]Entry)}
}

// IsEmpty informa si el carrito no tiene líneas.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Add agrega una unidad del producto con el precio efectivo recién calculado.
// Si la línea ya existe incrementa la cantidad y sobrescribe el precio capturado
// con el nuevo (el precio deriva al último valor en re-agregados, no en vistas).
// Devuelve la cantidad resultante.
func (c *Cart) Add(productID string, unitPrice decimal.Decimal) int {
	if c.Items == nil {
		c.Items = make(map[string]Entry)
	}
	entry, ok := c.Items[productID]
	if ok {
		entry.Quantity++
		entry.UnitPrice = unitPrice
	} else {
		entry = Entry{Quantity: 1, UnitPrice: unitPrice}
	}
	c.Items[productID] = entry
	return entry.Quantity
}

// AdjustResult describe el resultado de una operación de ajuste sobre una línea.
type AdjustResult struct {
	Success      bool
	Message      string
	NewQuantity  int
	ItemSubtotal decimal.Decimal
}

// Increase suma una unidad a la línea. Falla solo si la línea no existe.
func (c *Cart) Increase(productID string) AdjustResult {
	entry, ok := c.Items[productID]
	if !ok {
		return AdjustResult{Message: "Ese producto no está en tu carrito."}
	}
	entry.Quantity++
	c.Items[productID] = entry
	return AdjustResult{
		Success:      true,
		Message:      "Cantidad aumentada.",
		NewQuantity:  entry.Quantity,
		ItemSubtotal: entry.Subtotal(),
	}
}

// Decrease resta una unidad a la línea. En cantidad 1 la línea se conserva en 1
// y se reporta no-éxito ("mínimo alcanzado"): es una señal para el usuario, no un error.
func (c *Cart) Decrease(productID string) AdjustResult {
	entry, ok := c.Items[productID]
	if !ok {
		return AdjustResult{Message: "Ese producto no está en tu carrito."}
	}
	if entry.Quantity <= 1 {
		return AdjustResult{
			Message:      "La cantidad mínima es 1.",
			NewQuantity:  1,
			ItemSubtotal: entry.Subtotal(),
		}
	}
	entry.Quantity--
	c.Items[productID] = entry
	return AdjustResult{
		Success:      true,
		Message:      "Cantidad disminuida.",
		NewQuantity:  entry.Quantity,
		ItemSubtotal: entry.Subtotal(),
	}
}

// Remove elimina la línea si existe; devuelve false si no estaba.
func (c *Cart) Remove(productID string) bool {
	if _, ok := c.Items[productID]; !ok {
		return false
	}
	delete(c.Items, productID)
	return true
}

// Subtotal suma cantidad × precio capturado sobre todas las líneas.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range c.Items {
		total = total.Add(entry.Subtotal())
	}
	return total
}

// Total devuelve el total a pagar: subtotal + costo de envío, pero un carrito
// con subtotal 0 muestra total 0 (no se cobra envío sobre un carrito vacío).
func (c Cart) Total(shippingFee decimal.Decimal) decimal.Decimal {
	subtotal := c.Subtotal()
	if subtotal.IsZero() || subtotal.IsNegative() {
		return decimal.Zero
	}
	return subtotal.Add(shippingFee)
}
