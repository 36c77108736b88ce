package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/olivosverdes/fruteria-api/internal/application/dto"
	"github.com/olivosverdes/fruteria-api/internal/domain"
	"github.com/olivosverdes/fruteria-api/internal/domain/entity"
	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// OfferUseCase CRUD de ofertas. La vigencia la decide el pricing por fechas;
// aquí solo se valida el rango del porcentaje.
type OfferUseCase struct {
	repo repository.OfferRepository
}

// NewOfferUseCase construye el caso de uso.
func NewOfferUseCase(repo repository.OfferRepository) *OfferUseCase {
	return &OfferUseCase{repo: repo}
}

// Create crea una oferta. Fechas ausentes quedan en NULL: la oferta existe pero
// nunca entra en vigencia hasta que se completen ambas cotas.
func (uc *OfferUseCase) Create(in dto.CreateOfferRequest) (*dto.OfferResponse, error) {
	if in.DiscountPct.IsNegative() || in.DiscountPct.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}
	start, err := parseDate(in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := parseDate(in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	offer := &entity.Offer{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Active:      in.Active,
		StartDate:   start,
		EndDate:     end,
		DiscountPct: in.DiscountPct,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(offer); err != nil {
		return nil, err
	}
	return toOfferResponse(offer), nil
}

// Update actualiza una oferta existente; nil si no existe.
func (uc *OfferUseCase) Update(id string, in dto.UpdateOfferRequest) (*dto.OfferResponse, error) {
	offer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, nil
	}
	if in.Name != nil {
		offer.Name = *in.Name
	}
	if in.Description != nil {
		offer.Description = *in.Description
	}
	if in.Active != nil {
		offer.Active = *in.Active
	}
	if in.StartDate != nil {
		start, err := parseDate(in.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		offer.StartDate = start
	}
	if in.EndDate != nil {
		end, err := parseDate(in.EndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		offer.EndDate = end
	}
	if in.DiscountPct != nil {
		if in.DiscountPct.IsNegative() || in.DiscountPct.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.ErrInvalidInput
		}
		offer.DiscountPct = *in.DiscountPct
	}
	offer.UpdatedAt = time.Now()
	if err := uc.repo.Update(offer); err != nil {
		return nil, err
	}
	return toOfferResponse(offer), nil
}

// List lista todas las ofertas.
func (uc *OfferUseCase) List() ([]dto.OfferResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfferResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOfferResponse(o))
	}
	return items, nil
}

// Delete elimina la oferta; los productos asociados vuelven al precio de lista.
func (uc *OfferUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida %q: %w", *s, err)
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toOfferResponse(o *entity.Offer) *dto.OfferResponse {
	if o == nil {
		return nil
	}
	return &dto.OfferResponse{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		Active:      o.Active,
		StartDate:   formatDate(o.StartDate),
		EndDate:     formatDate(o.EndDate),
		DiscountPct: o.DiscountPct,
	}
}
