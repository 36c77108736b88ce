package repository

import "github.com/olivosverdes/fruteria-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// FindByUsernameOrEmail busca el identificador contra username O email,
	// sin distinguir mayúsculas. nil si no hay coincidencia.
	FindByUsernameOrEmail(identifier string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}

// ProfileRepository define el puerto de persistencia para Profile (1 a 1 con User).
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByUserID(userID string) (*entity.Profile, error)
	Update(profile *entity.Profile) error
}
