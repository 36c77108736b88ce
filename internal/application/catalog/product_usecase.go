package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/olivosverdes/fruteria-api/internal/application/dto"
	"github.com/olivosverdes/fruteria-api/internal/domain"
	"github.com/olivosverdes/fruteria-api/internal/domain/entity"
	"github.com/olivosverdes/fruteria-api/internal/domain/pricing"
	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
)

// ProductUseCase CRUD y listados de catálogo. Los precios efectivos se calculan
// al momento de armar la respuesta con el reloj inyectado.
type ProductUseCase struct {
	repo       repository.ProductRepository
	branchRepo repository.BranchRepository
	now        func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, branchRepo repository.BranchRepository, now func() time.Time) *ProductUseCase {
	if now == nil {
		now = time.Now
	}
	return &ProductUseCase{repo: repo, branchRepo: branchRepo, now: now}
}

// Create crea un producto. Con BranchID vacío se asigna la primera sucursal.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	branchID := in.BranchID
	if branchID == "" {
		branch, err := uc.branchRepo.GetFirst()
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, domain.ErrNoBranch
		}
		branchID = branch.ID
	}
	now := uc.now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		BranchID:    branchID,
		OfferID:     in.OfferID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// GetByID devuelve el producto con su precio efectivo; nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(product), nil
}

// Update actualiza un producto existente; nil si no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}
	if in.BranchID != nil {
		product.BranchID = *in.BranchID
	}
	if in.OfferID != nil {
		product.OfferID = in.OfferID
	}
	product.UpdatedAt = uc.now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	// releer para traer la oferta recién asociada
	updated, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return uc.toResponse(product), nil
	}
	return uc.toResponse(updated), nil
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return uc.toListResponse("Nuestros Productos", list), nil
}

// ListFeatured devuelve los productos destacados de la portada (los más recientes).
func (uc *ProductUseCase) ListFeatured(limit int) (*dto.ProductListResponse, error) {
	if limit <= 0 {
		limit = 3
	}
	list, err := uc.repo.ListFeatured(limit)
	if err != nil {
		return nil, err
	}
	return uc.toListResponse("Productos Destacados", list), nil
}

// ListByCategory devuelve los productos de una categoría por su nombre.
// Una categoría inexistente o vacía devuelve lista vacía, no error.
func (uc *ProductUseCase) ListByCategory(categoryName string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByCategoryName(categoryName)
	if err != nil {
		return nil, err
	}
	return uc.toListResponse(categoryName, list), nil
}

// ListOnOffer devuelve los productos con oferta vigente hoy.
func (uc *ProductUseCase) ListOnOffer() (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListOnOffer(uc.now())
	if err != nil {
		return nil, err
	}
	return uc.toListResponse("Ofertas", list), nil
}

// Delete elimina el producto.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) toListResponse(section string, list []*entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *uc.toResponse(p))
	}
	return &dto.ProductListResponse{Section: section, Items: items}
}

func (uc *ProductUseCase) toResponse(p *entity.Product) *dto.ProductResponse {
	today := uc.now()
	effective := pricing.ProductPrice(p, today)
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		EffectivePrice: effective,
		OnOffer:        pricing.InRange(p.Offer, today),
		Description:    p.Description,
		ImageURL:       p.ImageURL,
		CategoryID:     p.CategoryID,
		BranchID:       p.BranchID,
		Offer:          toOfferResponse(p.Offer),
		CreatedAt:      p.CreatedAt,
	}
}
