package repository

import "github.com/olivosverdes/fruteria-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateDetail(detail *entity.OrderDetail) error
	// GetByIDAndCustomer devuelve la orden solo si pertenece al cliente; nil si no.
	GetByIDAndCustomer(id, customerID string) (*entity.Order, error)
	GetDetailsByOrderID(orderID string) ([]*entity.OrderDetail, error)
	ListByCustomer(customerID string) ([]*entity.Order, error)
}
