package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Branch ────────────────────────────────────────────────────────────────────

// CreateBranchRequest entrada para crear una sucursal.
type CreateBranchRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Address string `json:"address" validate:"required,min=1,max=255"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ── Category ──────────────────────────────────────────────────────────────────

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ── Offer ─────────────────────────────────────────────────────────────────────

// CreateOfferRequest entrada para crear una oferta. Fechas en formato 2006-01-02;
// una fecha ausente deja la cota en NULL (la oferta no entra en vigencia).
type CreateOfferRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description string          `json:"description"`
	Active      bool            `json:"active"`
	StartDate   *string         `json:"start_date"`
	EndDate     *string         `json:"end_date"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
}

// UpdateOfferRequest entrada para actualizar una oferta (campos opcionales).
type UpdateOfferRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Active      *bool            `json:"active"`
	StartDate   *string          `json:"start_date"`
	EndDate     *string          `json:"end_date"`
	DiscountPct *decimal.Decimal `json:"discount_pct"`
}

// OfferResponse salida de una oferta.
type OfferResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Active      bool            `json:"active"`
	StartDate   *string         `json:"start_date"`
	EndDate     *string         `json:"end_date"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
}

// ── Product ───────────────────────────────────────────────────────────────────

// CreateProductRequest entrada para crear un producto. BranchID vacío asigna
// la sucursal por defecto (la primera configurada).
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	CategoryID  *string         `json:"category_id"`
	BranchID    string          `json:"branch_id"`
	OfferID     *string         `json:"offer_id"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	ImageURL    *string          `json:"image_url"`
	CategoryID  *string          `json:"category_id"`
	BranchID    *string          `json:"branch_id"`
	OfferID     *string          `json:"offer_id"`
}

// ProductResponse salida de un producto. EffectivePrice trae el descuento de la
// oferta vigente ya aplicado; si no hay oferta vigente es igual a Price.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	EffectivePrice decimal.Decimal `json:"effective_price"`
	OnOffer        bool            `json:"on_offer"`
	Description    string          `json:"description"`
	ImageURL       string          `json:"image_url"`
	CategoryID     *string         `json:"category_id,omitempty"`
	BranchID       string          `json:"branch_id"`
	Offer          *OfferResponse  `json:"offer,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ProductListResponse lista de productos con el título de la sección.
type ProductListResponse struct {
	Section string            `json:"section,omitempty"`
	Items   []ProductResponse `json:"items"`
}
