package auth

import (
	"context"

	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
)

// TxRunner puerto de transacción para el registro: cuenta y perfil se crean
// juntos o ninguno.
type TxRunner interface {
	RunRegister(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		profileRepo repository.ProfileRepository,
	) error) error
}
