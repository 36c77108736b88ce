package entity

import "time"

// Branch representa una sucursal: ubicación física o punto de distribución.
type Branch struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
