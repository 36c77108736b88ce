// Package pricing calcula el precio efectivo de un producto según su oferta.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/olivosverdes/fruteria-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// EffectivePrice devuelve el precio con el descuento de la oferta aplicado si
// la oferta está vigente hoy, redondeado a 2 decimales; si no, el precio de lista.
//
// Reglas de vigencia:
//   - sin oferta: precio de lista;
//   - start ≤ today ≤ end (inclusive, comparando solo la fecha): se aplica
//     price × (1 − pct/100);
//   - una cota de fecha en nil cierra la vigencia: la oferta nunca aplica
//     (política fail-closed para datos incompletos);
//   - el flag Active no se consulta: la vigencia depende solo de las fechas.
//
// Función pura: no toca reloj ni almacenamiento; "today" siempre se inyecta.
func EffectivePrice(price decimal.Decimal, offer *entity.Offer, today time.Time) decimal.Decimal {
	if offer == nil || !inRange(offer, today) {
		return price
	}
	factor := decimal.NewFromInt(1).Sub(offer.DiscountPct.Div(hundred))
	return price.Mul(factor).Round(2)
}

// ProductPrice es un atajo para productos con la oferta ya cargada por el repositorio.
func ProductPrice(p *entity.Product, today time.Time) decimal.Decimal {
	return EffectivePrice(p.Price, p.Offer, today)
}

// InRange informa si la oferta está vigente en la fecha dada (cotas inclusive).
func InRange(offer *entity.Offer, today time.Time) bool {
	return offer != nil && inRange(offer, today)
}

func inRange(offer *entity.Offer, today time.Time) bool {
	if offer.StartDate == nil || offer.EndDate == nil {
		return false
	}
	day := dateOnly(today)
	return !day.Before(dateOnly(*offer.StartDate)) && !day.After(dateOnly(*offer.EndDate))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
