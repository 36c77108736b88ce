package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivosverdes/fruteria-api/internal/domain/cart"
)

var shipping = decimal.RequireFromString("40.00")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAdd_NuevaLinea(t *testing.T) {
	c := cart.New()
	qty := c.Add("p-1", dec("15.00"))

	assert.Equal(t, 1, qty)
	require.Contains(t, c.Items, "p-1")
	assert.True(t, dec("15.00").Equal(c.Items["p-1"].UnitPrice))
}

func TestAdd_ReAgregar_IncrementaYRefrescaPrecio(t *testing.T) {
	c := cart.New()
	c.Add("p-1", dec("15.00"))

	// el precio cambió entre un agregado y otro (entró una oferta)
	qty := c.Add("p-1", dec("12.00"))

	assert.Equal(t, 2, qty)
	entry := c.Items["p-1"]
	assert.True(t, dec("12.00").Equal(entry.UnitPrice),
		"re-agregar debe sobrescribir el precio capturado con el nuevo")
	assert.True(t, dec("24.00").Equal(entry.Subtotal()),
		"el subtotal de la línea usa el precio más reciente para todas las unidades")
}

func TestIncrease(t *testing.T) {
	c := cart.New()
	c.Add("p-1", dec("10.00"))

	res := c.Increase("p-1")
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.NewQuantity)
	assert.True(t, dec("20.00").Equal(res.ItemSubtotal))
}

func TestIncrease_LineaInexistente(t *testing.T) {
	c := cart.New()
	res := c.Increase("fantasma")
	assert.False(t, res.Success)
}

func TestDecrease_EnMinimo_ConservaLaLinea(t *testing.T) {
	c := cart.New()
	c.Add("p-1", dec("10.00"))

	res := c.Decrease("p-1")

	assert.False(t, res.Success, "bajar de 1 no es una operación exitosa")
	assert.Equal(t, "La cantidad mínima es 1.", res.Message)
	assert.Equal(t, 1, res.NewQuantity)
	assert.Equal(t, 1, c.Items["p-1"].Quantity, "la línea debe conservarse en 1, no eliminarse")
}

func TestDecrease_PorEncimaDelMinimo(t *testing.T) {
	c := cart.New()
	c.Add("p-1", dec("10.00"))
	c.Increase("p-1")
	c.Increase("p-1")

	res := c.Decrease("p-1")
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.NewQuantity)
}

func TestRemove(t *testing.T) {
	c := cart.New()
	c.Add("p-1", dec("10.00"))

	assert.True(t, c.Remove("p-1"))
	assert.False(t, c.Remove("p-1"), "eliminar una línea inexistente devuelve false")
	assert.True(t, c.IsEmpty())
}

func TestTotal_CarritoVacio_NoCobraEnvio(t *testing.T) {
	c := cart.New()
	assert.True(t, c.Subtotal().IsZero())
	assert.True(t, c.Total(shipping).IsZero(),
		"un carrito con subtotal 0 debe mostrar total 0, no 0 + envío")
}

func TestTotal_ConProductos_SumaEnvio(t *testing.T) {
	c := cart.New()
	c.Add("p-1", dec("15.00")) // 1 × 15.00
	c.Add("p-2", dec("10.00"))
	c.Increase("p-2") // 2 × 10.00

	assert.True(t, dec("35.00").Equal(c.Subtotal()), "subtotal: 15.00 + 20.00")
	assert.True(t, dec("75.00").Equal(c.Total(shipping)), "total: 35.00 + 40.00 de envío")
}

func TestAdd_SobreCarritoNil(t *testing.T) {
	var c cart.Cart
	qty := c.Add("p-1", dec("5.00"))
	assert.Equal(t, 1, qty)
	assert.False(t, c.IsEmpty())
}
