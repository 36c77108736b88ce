package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/olivosverdes/fruteria-api/internal/domain/entity"
	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
)

var _ repository.OfferRepository = (*OfferRepo)(nil)

// OfferRepo implementación de OfferRepository (usable con pool o tx).
type OfferRepo struct {
	q Querier
}

// NewOfferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOfferRepository(q Querier) *OfferRepo {
	return &OfferRepo{q: q}
}

// Create persiste una oferta. Las fechas pueden ser NULL (la oferta no entra en vigencia).
func (r *OfferRepo) Create(offer *entity.Offer) error {
	query := `
		INSERT INTO offers (id, name, description, active, start_date, end_date, discount_pct, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		offer.ID, offer.Name, offer.Description, offer.Active,
		offer.StartDate, offer.EndDate, offer.DiscountPct, offer.CreatedAt, offer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

// GetByID obtiene una oferta por ID.
func (r *OfferRepo) GetByID(id string) (*entity.Offer, error) {
	query := `
		SELECT id, name, description, active, start_date, end_date, discount_pct, created_at, updated_at
		FROM offers WHERE id = $1`
	var o entity.Offer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Name, &o.Description, &o.Active, &o.StartDate, &o.EndDate,
		&o.DiscountPct, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}
	return &o, nil
}

// List devuelve todas las ofertas, las más recientes primero.
func (r *OfferRepo) List() ([]*entity.Offer, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, description, active, start_date, end_date, discount_pct, created_at, updated_at
		FROM offers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Offer
	for rows.Next() {
		var o entity.Offer
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.Active, &o.StartDate, &o.EndDate,
			&o.DiscountPct, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza una oferta.
func (r *OfferRepo) Update(offer *entity.Offer) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE offers
		SET name = $2, description = $3, active = $4, start_date = $5, end_date = $6, discount_pct = $7, updated_at = $8
		WHERE id = $1`,
		offer.ID, offer.Name, offer.Description, offer.Active,
		offer.StartDate, offer.EndDate, offer.DiscountPct, offer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}
	return nil
}

// Delete elimina la oferta; los productos que la referencian quedan sin oferta
// (FK ON DELETE SET NULL) y vuelven a su precio de lista.
func (r *OfferRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	return nil
}
