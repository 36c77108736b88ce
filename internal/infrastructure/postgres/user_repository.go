package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/olivosverdes/fruteria-api/internal/domain"
	"github.com/olivosverdes/fruteria-api/internal/domain/entity"
	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, email, password_hash, first_name, last_name, role, created_at, updated_at`

// Create persiste un usuario. Username y email son únicos.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.FirstName, user.LastName, user.Role, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.get(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByUsernameOrEmail busca el identificador contra username O email ignorando mayúsculas.
// Ante más de una coincidencia (raro) se toma la más antigua.
func (r *UserRepo) FindByUsernameOrEmail(identifier string) (*entity.User, error) {
	return r.get(`
		SELECT `+userColumns+` FROM users
		WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($1)
		ORDER BY created_at LIMIT 1`, identifier)
}

// GetByUsername obtiene un usuario por username exacto (ignorando mayúsculas).
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.get(`SELECT `+userColumns+` FROM users WHERE LOWER(username) = LOWER($1)`, username)
}

// GetByEmail obtiene un usuario por email exacto (ignorando mayúsculas).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.get(`SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
}

func (r *UserRepo) get(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update actualiza nombre y apellido del usuario (identidad y rol no cambian por esta vía).
func (r *UserRepo) Update(user *entity.User) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET first_name = $2, last_name = $3, updated_at = $4 WHERE id = $1`,
		user.ID, user.FirstName, user.LastName, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
