package repository

import (
	"time"

	"github.com/olivosverdes/fruteria-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven el producto con su oferta cargada (si tiene).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List devuelve todos los productos ordenados por nombre.
	List() ([]*entity.Product, error)
	// ListFeatured devuelve los N productos más recientes (portada).
	ListFeatured(limit int) ([]*entity.Product, error)
	// ListByCategoryName filtra por nombre de categoría, ordenado por nombre.
	ListByCategoryName(categoryName string) ([]*entity.Product, error)
	// ListOnOffer devuelve productos cuya oferta está vigente en la fecha dada.
	ListOnOffer(today time.Time) ([]*entity.Product, error)
	Delete(id string) error
}
