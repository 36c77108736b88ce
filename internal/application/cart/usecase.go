// Package cart orquesta el carrito de sesión: resolución de productos,
// captura de precio efectivo y persistencia en el almacén de sesiones.
package cart

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/olivosverdes/fruteria-api/internal/application/dto"
	"github.com/olivosverdes/fruteria-api/internal/domain"
	cartdomain "github.com/olivosverdes/fruteria-api/internal/domain/cart"
	"github.com/olivosverdes/fruteria-api/internal/domain/pricing"
	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
)

// UseCase maneja las operaciones del carrito por sesión. Cada operación es
// leer-modificar-guardar sobre el almacén; no hay bloqueo entre peticiones.
type UseCase struct {
	store       repository.CartStore
	productRepo repository.ProductRepository
	shippingFee decimal.Decimal
	now         func() time.Time
}

// NewUseCase construye el caso de uso del carrito.
func NewUseCase(store repository.CartStore, productRepo repository.ProductRepository, shippingFee decimal.Decimal, now func() time.Time) *UseCase {
	if now == nil {
		now = time.Now
	}
	return &UseCase{store: store, productRepo: productRepo, shippingFee: shippingFee, now: now}
}

// Add agrega una unidad del producto al carrito, capturando su precio efectivo
// actual. Re-agregar incrementa la cantidad y refresca el precio capturado.
func (uc *UseCase) Add(ctx context.Context, sessionID, productID string) (*dto.AddToCartResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	c, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	price := pricing.ProductPrice(product, uc.now())
	qty := c.Add(productID, price)
	if err := uc.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return &dto.AddToCartResponse{
		Success:  true,
		Message:  "¡" + product.Name + " agregado al carrito!",
		Quantity: qty,
	}, nil
}

// Increase suma una unidad a una línea existente del carrito.
func (uc *UseCase) Increase(ctx context.Context, sessionID, productID string) (*dto.AdjustCartResponse, error) {
	return uc.adjust(ctx, sessionID, productID, (*cartdomain.Cart).Increase)
}

// Decrease resta una unidad a una línea existente. En cantidad 1 la línea se
// conserva y se reporta "La cantidad mínima es 1." sin éxito.
func (uc *UseCase) Decrease(ctx context.Context, sessionID, productID string) (*dto.AdjustCartResponse, error) {
	return uc.adjust(ctx, sessionID, productID, (*cartdomain.Cart).Decrease)
}

func (uc *UseCase) adjust(ctx context.Context, sessionID, productID string, op func(*cartdomain.Cart, string) cartdomain.AdjustResult) (*dto.AdjustCartResponse, error) {
	c, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	result := op(&c, productID)
	if result.Success {
		if err := uc.store.Save(ctx, sessionID, c); err != nil {
			return nil, err
		}
	}
	return &dto.AdjustCartResponse{
		Success:         result.Success,
		Message:         result.Message,
		NewQuantity:     result.NewQuantity,
		NewItemSubtotal: result.ItemSubtotal,
		NewSubtotal:     c.Subtotal(),
		NewTotalFinal:   c.Total(uc.shippingFee),
	}, nil
}

// Remove elimina la línea del carrito. Eliminar una línea inexistente no es error.
func (uc *UseCase) Remove(ctx context.Context, sessionID, productID string) (*dto.RemoveFromCartResponse, error) {
	c, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	removed := c.Remove(productID)
	if removed {
		if err := uc.store.Save(ctx, sessionID, c); err != nil {
			return nil, err
		}
	}
	msg := "Ese producto no estaba en tu carrito."
	if removed {
		msg = "Producto eliminado del carrito."
	}
	return &dto.RemoveFromCartResponse{
		Success:       removed,
		Message:       msg,
		NewSubtotal:   c.Subtotal(),
		NewTotalFinal: c.Total(uc.shippingFee),
	}, nil
}

// View arma la vista del carrito resolviendo cada producto. Las líneas cuyo
// producto ya no existe o tiene datos corruptos se descartan y la sesión se
// reescribe saneada (reparación en lectura).
func (uc *UseCase) View(ctx context.Context, sessionID string) (*dto.CartView, error) {
	c, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	view := &dto.CartView{
		Items:       make([]dto.CartItemView, 0, len(c.Items)),
		ShippingFee: uc.shippingFee,
	}
	repaired := false
	for productID, entry := range c.Items {
		if entry.Quantity < 1 || !entry.UnitPrice.IsPositive() {
			c.Remove(productID)
			repaired = true
			continue
		}
		product, err := uc.productRepo.GetByID(productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			c.Remove(productID)
			repaired = true
			continue
		}
		view.Items = append(view.Items, dto.CartItemView{
			ProductID:   productID,
			ProductName: product.Name,
			ImageURL:    product.ImageURL,
			Quantity:    entry.Quantity,
			UnitPrice:   entry.UnitPrice,
			Subtotal:    entry.Subtotal(),
		})
	}
	sort.Slice(view.Items, func(i, j int) bool {
		return view.Items[i].ProductName < view.Items[j].ProductName
	})
	view.Subtotal = c.Subtotal()
	view.TotalFinal = c.Total(uc.shippingFee)
	if repaired {
		if err := uc.store.Save(ctx, sessionID, c); err != nil {
			return nil, err
		}
	}
	return view, nil
}

// Clear vacía el carrito de la sesión.
func (uc *UseCase) Clear(ctx context.Context, sessionID string) error {
	return uc.store.Delete(ctx, sessionID)
}

// Snapshot devuelve el carrito crudo de la sesión (para el checkout).
func (uc *UseCase) Snapshot(ctx context.Context, sessionID string) (cartdomain.Cart, error) {
	return uc.store.Get(ctx, sessionID)
}
