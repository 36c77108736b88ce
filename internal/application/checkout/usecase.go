// Package checkout orquesta la confirmación de compra: valida precondiciones,
// persiste la orden con sus líneas en una transacción y limpia el carrito.
package checkout

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	cartuc "github.com/olivosverdes/fruteria-api/internal/application/cart"
	"github.com/olivosverdes/fruteria-api/internal/application/dto"
	"github.com/olivosverdes/fruteria-api/internal/domain"
	"github.com/olivosverdes/fruteria-api/internal/domain/entity"
	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
)

// UseCase orquesta el checkout de un cliente autenticado.
type UseCase struct {
	cart        *cartuc.UseCase
	productRepo repository.ProductRepository
	profileRepo repository.ProfileRepository
	branchRepo  repository.BranchRepository
	orderRepo   repository.OrderRepository
	txRunner    TxRunner
	now         func() time.Time
}

// NewUseCase construye el caso de uso de checkout.
func NewUseCase(
	cart *cartuc.UseCase,
	productRepo repository.ProductRepository,
	profileRepo repository.ProfileRepository,
	branchRepo repository.BranchRepository,
	orderRepo repository.OrderRepository,
	txRunner TxRunner,
	now func() time.Time,
) *UseCase {
	if now == nil {
		now = time.Now
	}
	return &UseCase{
		cart:        cart,
		productRepo: productRepo,
		profileRepo: profileRepo,
		branchRepo:  branchRepo,
		orderRepo:   orderRepo,
		txRunner:    txRunner,
		now:         now,
	}
}

// Review arma la vista previa del checkout: carrito con totales y perfil de envío.
// No valida precondiciones; el cliente puede ver su checkout incompleto.
func (uc *UseCase) Review(ctx context.Context, sessionID, userID string) (*dto.CheckoutView, error) {
	view, err := uc.cart.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	profile, err := uc.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	out := &dto.CheckoutView{Cart: *view}
	if profile != nil {
		out.Profile = &dto.ProfileResponse{
			ID:       profile.ID,
			UserID:   profile.UserID,
			FullName: profile.FullName,
			Phone:    profile.Phone,
			Address:  profile.Address,
		}
	}
	return out, nil
}

// Confirm valida las precondiciones en orden fijo (pago, carrito, dirección,
// sucursal), persiste Order + líneas en una transacción y vacía el carrito.
// El total de la orden es el subtotal del carrito, sin costo de envío.
// Si la persistencia falla el carrito queda intacto para reintentar.
func (uc *UseCase) Confirm(ctx context.Context, sessionID, userID string, in dto.ConfirmOrderRequest) (*dto.ConfirmOrderResponse, error) {
	if strings.TrimSpace(in.CardNumber) == "" {
		return nil, domain.ErrMissingPayment
	}
	c, err := uc.cart.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}
	profile, err := uc.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || strings.TrimSpace(profile.Address) == "" {
		return nil, domain.ErrMissingAddress
	}
	branch, err := uc.branchRepo.GetFirst()
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNoBranch
	}

	// resolver cada línea contra el catálogo: un producto desaparecido
	// aborta el checkout completo, sin orden parcial
	productIDs := make([]string, 0, len(c.Items))
	for id := range c.Items {
		productIDs = append(productIDs, id)
	}
	sort.Strings(productIDs)
	for _, id := range productIDs {
		product, err := uc.productRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := uc.now()
	order := &entity.Order{
		ID:         uuid.New().String(),
		CustomerID: userID,
		BranchID:   branch.ID,
		Date:       now,
		Total:      c.Subtotal(),
		Status:     entity.OrderStatusPagado,
		CreatedAt:  now,
	}
	err = uc.txRunner.RunCheckout(ctx, func(orderRepo repository.OrderRepository) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, id := range productIDs {
			entry := c.Items[id]
			detail := &entity.OrderDetail{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: id,
				Quantity:  entry.Quantity,
				UnitPrice: entry.UnitPrice,
			}
			if err := orderRepo.CreateDetail(detail); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// el carrito se limpia recién después del commit; si la limpieza falla
	// la orden ya existe y solo queda un carrito obsoleto que expira solo
	_ = uc.cart.Clear(ctx, sessionID)

	return &dto.ConfirmOrderResponse{
		Success: true,
		Message: "¡Gracias por tu compra! Tu pedido fue registrado.",
		OrderID: order.ID,
	}, nil
}

// GetOrder devuelve la orden con sus líneas solo si pertenece al solicitante.
func (uc *UseCase) GetOrder(orderID, userID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByIDAndCustomer(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.orderRepo.GetDetailsByOrderID(order.ID)
	if err != nil {
		return nil, err
	}
	lines := make([]dto.OrderLineResponse, 0, len(details))
	for _, d := range details {
		lines = append(lines, dto.OrderLineResponse{
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Subtotal:  d.Subtotal(),
		})
	}
	return &dto.OrderResponse{
		ID:       order.ID,
		BranchID: order.BranchID,
		Date:     order.Date,
		Total:    order.Total,
		Status:   order.Status,
		Lines:    lines,
	}, nil
}

// ListOrders devuelve las órdenes del cliente (solo cabeceras).
func (uc *UseCase) ListOrders(userID string) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListByCustomer(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.OrderResponse{
			ID:       o.ID,
			BranchID: o.BranchID,
			Date:     o.Date,
			Total:    o.Total,
			Status:   o.Status,
		})
	}
	return out, nil
}
