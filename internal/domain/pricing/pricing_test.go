package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivosverdes/fruteria-api/internal/domain/entity"
	"github.com/olivosverdes/fruteria-api/internal/domain/pricing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func offerWith(pct string, start, end time.Time) *entity.Offer {
	return &entity.Offer{
		ID:          "of-1",
		Name:        "Oferta de prueba",
		Active:      true,
		StartDate:   &start,
		EndDate:     &end,
		DiscountPct: decimal.RequireFromString(pct),
	}
}

func TestEffectivePrice_SinOferta_PrecioDeLista(t *testing.T) {
	price := decimal.RequireFromString("15.00")
	got := pricing.EffectivePrice(price, nil, date(2026, 3, 10))
	assert.True(t, price.Equal(got), "sin oferta el precio efectivo debe ser el de lista")
}

func TestEffectivePrice_OfertaVigente_AplicaDescuento(t *testing.T) {
	price := decimal.RequireFromString("15.00")
	offer := offerWith("20", date(2026, 3, 1), date(2026, 3, 31))

	got := pricing.EffectivePrice(price, offer, date(2026, 3, 10))
	assert.True(t, decimal.RequireFromString("12.00").Equal(got),
		"15.00 con 20 de descuento debe dar 12.00, obtuve %s", got)
}

func TestEffectivePrice_CotasInclusive(t *testing.T) {
	price := decimal.RequireFromString("10.00")
	offer := offerWith("50", date(2026, 3, 1), date(2026, 3, 31))

	// primer y último día del rango: el descuento aplica
	assert.True(t, decimal.RequireFromString("5.00").Equal(
		pricing.EffectivePrice(price, offer, date(2026, 3, 1))))
	assert.True(t, decimal.RequireFromString("5.00").Equal(
		pricing.EffectivePrice(price, offer, date(2026, 3, 31))))

	// un día fuera por cada lado: precio de lista
	assert.True(t, price.Equal(pricing.EffectivePrice(price, offer, date(2026, 2, 28))))
	assert.True(t, price.Equal(pricing.EffectivePrice(price, offer, date(2026, 4, 1))))
}

func TestEffectivePrice_IgnoraHoraDelDia(t *testing.T) {
	price := decimal.RequireFromString("10.00")
	offer := offerWith("10", date(2026, 3, 1), date(2026, 3, 1))

	lastMinute := time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC)
	got := pricing.EffectivePrice(price, offer, lastMinute)
	assert.True(t, decimal.RequireFromString("9.00").Equal(got),
		"la vigencia compara solo la fecha, no la hora")
}

func TestEffectivePrice_FechaNil_NuncaAplica(t *testing.T) {
	price := decimal.RequireFromString("10.00")
	end := date(2026, 12, 31)

	sinInicio := &entity.Offer{DiscountPct: decimal.RequireFromString("50"), EndDate: &end}
	assert.True(t, price.Equal(pricing.EffectivePrice(price, sinInicio, date(2026, 6, 1))),
		"oferta sin fecha de inicio no debe aplicar nunca")

	start := date(2026, 1, 1)
	sinFin := &entity.Offer{DiscountPct: decimal.RequireFromString("50"), StartDate: &start}
	assert.True(t, price.Equal(pricing.EffectivePrice(price, sinFin, date(2026, 6, 1))),
		"oferta sin fecha de fin no debe aplicar nunca")
}

func TestEffectivePrice_FlagActiveNoSeConsulta(t *testing.T) {
	price := decimal.RequireFromString("20.00")
	offer := offerWith("25", date(2026, 3, 1), date(2026, 3, 31))
	offer.Active = false

	got := pricing.EffectivePrice(price, offer, date(2026, 3, 15))
	assert.True(t, decimal.RequireFromString("15.00").Equal(got),
		"la vigencia depende solo de las fechas, no del flag active")
}

func TestEffectivePrice_RedondeaADosDecimales(t *testing.T) {
	price := decimal.RequireFromString("9.99")
	offer := offerWith("33", date(2026, 3, 1), date(2026, 3, 31))

	got := pricing.EffectivePrice(price, offer, date(2026, 3, 15))
	// 9.99 × 0.67 = 6.6933 → 6.69
	assert.True(t, decimal.RequireFromString("6.69").Equal(got), "obtuve %s", got)
	assert.LessOrEqual(t, got.Exponent(), int32(0))
	assert.GreaterOrEqual(t, got.Exponent(), int32(-2))
}

func TestEffectivePrice_DescuentoCeroYCien(t *testing.T) {
	price := decimal.RequireFromString("12.50")

	cero := offerWith("0", date(2026, 3, 1), date(2026, 3, 31))
	assert.True(t, price.Equal(pricing.EffectivePrice(price, cero, date(2026, 3, 15))),
		"descuento 0 deja el precio de lista")

	cien := offerWith("100", date(2026, 3, 1), date(2026, 3, 31))
	assert.True(t, pricing.EffectivePrice(price, cien, date(2026, 3, 15)).IsZero(),
		"descuento 100 deja el precio en cero")
}

func TestProductPrice_UsaLaOfertaCargada(t *testing.T) {
	offer := offerWith("20", date(2026, 3, 1), date(2026, 3, 31))
	p := &entity.Product{
		ID:    "p-1",
		Price: decimal.RequireFromString("15.00"),
		Offer: offer,
	}
	got := pricing.ProductPrice(p, date(2026, 3, 10))
	require.True(t, decimal.RequireFromString("12.00").Equal(got))
}

func TestInRange(t *testing.T) {
	offer := offerWith("10", date(2026, 3, 1), date(2026, 3, 31))
	assert.True(t, pricing.InRange(offer, date(2026, 3, 15)))
	assert.False(t, pricing.InRange(offer, date(2026, 4, 15)))
	assert.False(t, pricing.InRange(nil, date(2026, 3, 15)))
}
