package repository

import "github.com/olivosverdes/fruteria-api/internal/domain/entity"

// BranchRepository define el puerto de persistencia para Branch.
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	// GetFirst devuelve la sucursal más antigua; nil si no hay ninguna.
	// El checkout la usa como asignación por defecto.
	GetFirst() (*entity.Branch, error)
	List() ([]*entity.Branch, error)
	Update(branch *entity.Branch) error
	Delete(id string) error
}

// CategoryRepository define el puerto de persistencia para Category.
// Al eliminar una categoría, los productos que la referencian quedan con
// categoría NULL (FK ON DELETE SET NULL); el producto sobrevive.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}

// OfferRepository define el puerto de persistencia para Offer.
// Al eliminar una oferta, los productos que la referencian quedan sin oferta.
type OfferRepository interface {
	Create(offer *entity.Offer) error
	GetByID(id string) (*entity.Offer, error)
	List() ([]*entity.Offer, error)
	Update(offer *entity.Offer) error
	Delete(id string) error
}
