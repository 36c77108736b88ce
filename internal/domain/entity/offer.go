package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer representa un descuento porcentual acotado por fechas, asignable a productos.
// Active se almacena y se expone en el CRUD, pero la vigencia se decide solo por
// el rango de fechas (ver pricing.EffectivePrice).
type Offer struct {
	ID          string
	Name        string
	Description string
	Active      bool
	StartDate   *time.Time // nil = sin cota; la oferta nunca entra en vigencia
	EndDate     *time.Time // nil = sin cota; la oferta nunca entra en vigencia
	DiscountPct decimal.Decimal // porcentaje de descuento (0-100)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
