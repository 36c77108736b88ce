package entity

import "time"

// Category representa una categoría de fruta o verdura (Cítricas, Dulces, Neutras...).
type Category struct {
	ID          string
	Name        string // único
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
