package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/olivosverdes/fruteria-api/internal/domain/entity"
	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
// El checkout lo usa siempre atado a una transacción (ver TxRunner.RunCheckout).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de la orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO orders (id, customer_id, branch_id, date, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerID, order.BranchID, order.Date, order.Total, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de la orden.
func (r *OrderRepo) CreateDetail(detail *entity.OrderDetail) error {
	if detail.ID == "" {
		detail.ID = uuid.New().String()
	}
	query := `
		INSERT INTO order_details (id, order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.OrderID, detail.ProductID, detail.Quantity, detail.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert order detail: %w", err)
	}
	return nil
}

// GetByIDAndCustomer devuelve la orden solo si pertenece al cliente; nil si no existe o es ajena.
func (r *OrderRepo) GetByIDAndCustomer(id, customerID string) (*entity.Order, error) {
	query := `
		SELECT id, customer_id, branch_id, date, total, status, created_at
		FROM orders WHERE id = $1 AND customer_id = $2`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id, customerID).Scan(
		&o.ID, &o.CustomerID, &o.BranchID, &o.Date, &o.Total, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// GetDetailsByOrderID obtiene todas las líneas de una orden.
func (r *OrderRepo) GetDetailsByOrderID(orderID string) ([]*entity.OrderDetail, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_details WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order details: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderDetail
	for rows.Next() {
		var d entity.OrderDetail
		if err := rows.Scan(&d.ID, &d.OrderID, &d.ProductID, &d.Quantity, &d.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListByCustomer devuelve las órdenes de un cliente, las más recientes primero.
func (r *OrderRepo) ListByCustomer(customerID string) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_id, branch_id, date, total, status, created_at
		FROM orders WHERE customer_id = $1 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.BranchID, &o.Date, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
