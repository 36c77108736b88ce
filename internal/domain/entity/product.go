package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una fruta o verdura disponible en la tienda.
// CategoryID y OfferID quedan en NULL si la categoría u oferta referenciada se elimina;
// BranchID es obligatorio.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal // precio de lista, 2 decimales
	Description string
	ImageURL    string
	CategoryID  *string
	BranchID    string
	OfferID     *string
	Offer       *Offer // cargada por el repositorio (LEFT JOIN); nil si no hay oferta
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
