package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/olivosverdes/fruteria-api/internal/application/auth"
	"github.com/olivosverdes/fruteria-api/internal/application/checkout"
	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
)

// Ensure TxRunner implements checkout.TxRunner and auth.TxRunner.
var _ checkout.TxRunner = (*TxRunner)(nil)
var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCheckout inicia una transacción con el repo de órdenes atado a la tx y hace
// Commit o Rollback. La cabecera y las líneas de la orden se escriben todas o ninguna.
func (r *TxRunner) RunCheckout(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)

	if err := fn(orderRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRegister inicia una transacción con los repos de usuario y perfil (registro
// todo-o-nada: cuenta y perfil se crean juntos o ninguno).
func (r *TxRunner) RunRegister(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	profileRepo := NewProfileRepository(tx)

	if err := fn(userRepo, profileRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
