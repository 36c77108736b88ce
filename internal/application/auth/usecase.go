package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/olivosverdes/fruteria-api/internal/application/dto"
	"github.com/olivosverdes/fruteria-api/internal/domain"
	"github.com/olivosverdes/fruteria-api/internal/domain/entity"
	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
	"github.com/olivosverdes/fruteria-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de identidad: registro, login y perfil de envío.
type UseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	txRunner    TxRunner
	jwtCfg      JWTConfig
}

// NewUseCase construye el caso de uso de identidad.
func NewUseCase(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, txRunner TxRunner, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, profileRepo: profileRepo, txRunner: txRunner, jwtCfg: jwtCfg}
}

// Register crea cuenta y perfil en una sola transacción (todo-o-nada), hashea el
// password con bcrypt y devuelve el token: el usuario queda con sesión iniciada.
// Devuelve ErrUsernameTaken o ErrEmailAlreadyExists ante duplicados.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	existing, err = uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         entity.RoleCliente,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &entity.Profile{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		FullName:  strings.TrimSpace(in.FirstName + " " + in.LastName),
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = uc.txRunner.RunRegister(ctx, func(
		userRepo repository.UserRepository,
		profileRepo repository.ProfileRepository,
	) error {
		if err := userRepo.Create(user); err != nil {
			return err
		}
		return profileRepo.Create(profile)
	})
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Login verifica las credenciales y genera el JWT. El identificador acepta
// username o email, sin distinguir mayúsculas.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsernameOrEmail(in.Identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// GetOrCreateProfile devuelve el perfil del usuario, creándolo vacío si aún no existe.
func (uc *UseCase) GetOrCreateProfile(userID string) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		user, err := uc.userRepo.GetByID(userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrUserNotFound
		}
		now := time.Now()
		profile = &entity.Profile{
			ID:        uuid.New().String(),
			UserID:    userID,
			FullName:  strings.TrimSpace(user.FirstName + " " + user.LastName),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.profileRepo.Create(profile); err != nil {
			return nil, err
		}
	}
	return toProfileResponse(profile), nil
}

// UpdateProfile actualiza los datos de contacto y envío.
func (uc *UseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if _, err := uc.GetOrCreateProfile(userID); err != nil {
		return nil, err
	}
	profile, err := uc.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if in.FullName != nil {
		profile.FullName = *in.FullName
	}
	if in.Phone != nil {
		profile.Phone = *in.Phone
	}
	if in.Address != nil {
		profile.Address = *in.Address
	}
	profile.UpdatedAt = time.Now()
	if err := uc.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:       p.ID,
		UserID:   p.UserID,
		FullName: p.FullName,
		Phone:    p.Phone,
		Address:  p.Address,
	}
}
