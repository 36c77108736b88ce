package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/olivosverdes/fruteria-api/internal/domain/entity"
	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// Las lecturas traen la oferta asociada con LEFT JOIN para poder calcular el precio efectivo.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	p.id, p.name, p.price, p.description, p.image_url, p.category_id, p.branch_id, p.offer_id,
	p.created_at, p.updated_at,
	o.id, o.name, o.description, o.active, o.start_date, o.end_date, o.discount_pct`

const productFrom = ` FROM products p LEFT JOIN offers o ON o.id = p.offer_id`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, description, image_url, category_id, branch_id, offer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Description, nullIfEmpty(product.ImageURL),
		product.CategoryID, product.BranchID, product.OfferID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("producto duplicado: %w", err)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, con su oferta si tiene.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT`+productColumns+productFrom+` WHERE p.id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, description = $4, image_url = $5, category_id = $6, branch_id = $7, offer_id = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Description, nullIfEmpty(product.ImageURL),
		product.CategoryID, product.BranchID, product.OfferID, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List devuelve todos los productos ordenados por nombre.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.list(`SELECT`+productColumns+productFrom+` ORDER BY p.name`)
}

// ListFeatured devuelve los productos más recientes (portada).
func (r *ProductRepo) ListFeatured(limit int) ([]*entity.Product, error) {
	return r.list(`SELECT`+productColumns+productFrom+` ORDER BY p.created_at DESC LIMIT $1`, limit)
}

// ListByCategoryName filtra por nombre de categoría, ordenado por nombre.
func (r *ProductRepo) ListByCategoryName(categoryName string) ([]*entity.Product, error) {
	return r.list(`SELECT`+productColumns+productFrom+`
		JOIN categories c ON c.id = p.category_id
		WHERE c.name = $1 ORDER BY p.name`, categoryName)
}

// ListOnOffer devuelve productos con oferta vigente en la fecha dada (cotas inclusive).
// Ofertas con alguna cota NULL no entran (misma política fail-closed que el pricing).
func (r *ProductRepo) ListOnOffer(today time.Time) ([]*entity.Product, error) {
	return r.list(`SELECT`+productColumns+productFrom+`
		WHERE p.offer_id IS NOT NULL
		  AND o.start_date IS NOT NULL AND o.end_date IS NOT NULL
		  AND o.start_date <= $1 AND o.end_date >= $1
		ORDER BY p.name`, today)
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// scanProduct escanea las columnas de producto + oferta (LEFT JOIN, puede venir toda en NULL).
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var imageURL *string
	var oID, oName, oDescription *string
	var oActive *bool
	var oStart, oEnd *time.Time
	var oPct *decimal.Decimal

	err := row.Scan(
		&p.ID, &p.Name, &p.Price, &p.Description, &imageURL, &p.CategoryID, &p.BranchID, &p.OfferID,
		&p.CreatedAt, &p.UpdatedAt,
		&oID, &oName, &oDescription, &oActive, &oStart, &oEnd, &oPct,
	)
	if err != nil {
		return nil, err
	}
	p.ImageURL = derefStr(imageURL)
	if oID != nil {
		p.Offer = &entity.Offer{
			ID:          *oID,
			Name:        derefStr(oName),
			Description: derefStr(oDescription),
			Active:      oActive != nil && *oActive,
			StartDate:   oStart,
			EndDate:     oEnd,
		}
		if oPct != nil {
			p.Offer.DiscountPct = *oPct
		}
	}
	return &p, nil
}
