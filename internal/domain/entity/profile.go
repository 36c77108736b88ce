package entity

import "time"

// Profile extiende User con los datos de envío (relación 1 a 1).
// Los datos de identidad (email, password) viven solo en User.
type Profile struct {
	ID        string
	UserID    string
	FullName  string
	Phone     string
	Address   string // precondición de checkout: no puede estar vacía al confirmar
	CreatedAt time.Time
	UpdatedAt time.Time
}
