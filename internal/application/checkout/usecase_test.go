package checkout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartuc "github.com/olivosverdes/fruteria-api/internal/application/cart"
	"github.com/olivosverdes/fruteria-api/internal/application/checkout"
	"github.com/olivosverdes/fruteria-api/internal/application/dto"
	"github.com/olivosverdes/fruteria-api/internal/domain"
	"github.com/olivosverdes/fruteria-api/internal/domain/entity"
	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
	"github.com/olivosverdes/fruteria-api/internal/infrastructure/memory"
)

const (
	testSession = "sess-checkout"
	testUser    = "user-1"
)

var shipping = decimal.RequireFromString("40.00")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) List() ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) ListFeatured(int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) ListByCategoryName(string) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) ListOnOffer(time.Time) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Delete(id string) error { delete(f.products, id); return nil }

type fakeProfileRepo struct {
	profile *entity.Profile
}

func (f *fakeProfileRepo) Create(p *entity.Profile) error { f.profile = p; return nil }
func (f *fakeProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	if f.profile != nil && f.profile.UserID == userID {
		return f.profile, nil
	}
	return nil, nil
}
func (f *fakeProfileRepo) Update(p *entity.Profile) error { f.profile = p; return nil }

type fakeBranchRepo struct {
	branch *entity.Branch
}

func (f *fakeBranchRepo) Create(b *entity.Branch) error           { f.branch = b; return nil }
func (f *fakeBranchRepo) GetByID(string) (*entity.Branch, error)  { return f.branch, nil }
func (f *fakeBranchRepo) GetFirst() (*entity.Branch, error)       { return f.branch, nil }
func (f *fakeBranchRepo) List() ([]*entity.Branch, error)         { return nil, nil }
func (f *fakeBranchRepo) Update(b *entity.Branch) error           { f.branch = b; return nil }
func (f *fakeBranchRepo) Delete(string) error                     { f.branch = nil; return nil }

// fakeOrderRepo acumula órdenes y líneas; failDetail simula un fallo de
// persistencia a mitad de la transacción.
type fakeOrderRepo struct {
	orders     []*entity.Order
	details    []*entity.OrderDetail
	failDetail bool
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeOrderRepo) CreateDetail(d *entity.OrderDetail) error {
	if f.failDetail {
		return errors.New("error de escritura simulado")
	}
	f.details = append(f.details, d)
	return nil
}

func (f *fakeOrderRepo) GetByIDAndCustomer(id, customerID string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.ID == id && o.CustomerID == customerID {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) GetDetailsByOrderID(orderID string) ([]*entity.OrderDetail, error) {
	var out []*entity.OrderDetail
	for _, d := range f.details {
		if d.OrderID == orderID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByCustomer(customerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback contra el repo dado. Si el callback falla,
// descarta lo acumulado (emula el rollback).
type fakeTxRunner struct {
	repo *fakeOrderRepo
}

func (r *fakeTxRunner) RunCheckout(_ context.Context, fn func(repository.OrderRepository) error) error {
	ordersBefore := len(r.repo.orders)
	detailsBefore := len(r.repo.details)
	if err := fn(r.repo); err != nil {
		r.repo.orders = r.repo.orders[:ordersBefore]
		r.repo.details = r.repo.details[:detailsBefore]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *checkout.UseCase
	cart     *cartuc.UseCase
	products *fakeProductRepo
	profiles *fakeProfileRepo
	branches *fakeBranchRepo
	orders   *fakeOrderRepo
	store    *memory.CartStore
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
}

func newFixture() *fixture {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"manzana": {ID: "manzana", Name: "Manzana Roja", Price: dec("15.00")},
		"fresa":   {ID: "fresa", Name: "Fresa", Price: dec("35.00")},
	}}
	profiles := &fakeProfileRepo{profile: &entity.Profile{
		ID:      "prof-1",
		UserID:  testUser,
		Address: "Av. Principal 123",
	}}
	branches := &fakeBranchRepo{branch: &entity.Branch{ID: "suc-1", Name: "Centro"}}
	orders := &fakeOrderRepo{}
	store := memory.NewCartStore()
	cartUC := cartuc.NewUseCase(store, products, shipping, fixedClock)
	uc := checkout.NewUseCase(cartUC, products, profiles, branches, orders, &fakeTxRunner{repo: orders}, fixedClock)
	return &fixture{
		uc:       uc,
		cart:     cartUC,
		products: products,
		profiles: profiles,
		branches: branches,
		orders:   orders,
		store:    store,
	}
}

func (f *fixture) fillCart(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	_, err := f.cart.Add(ctx, testSession, "manzana")
	require.NoError(t, err)
	_, err = f.cart.Add(ctx, testSession, "fresa")
	require.NoError(t, err)
	_, err = f.cart.Increase(ctx, testSession, "fresa")
	require.NoError(t, err)
}

var cardOK = dto.ConfirmOrderRequest{CardNumber: "4111111111111111"}

// ──────────────────────────────────────────────────────────────────────────────
// Confirm
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirm_CreaOrdenConLineasYLimpiaCarrito(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fillCart(t)

	out, err := f.uc.Confirm(ctx, testSession, testUser, cardOK)
	require.NoError(t, err)
	assert.True(t, out.Success)
	require.NotEmpty(t, out.OrderID)

	require.Len(t, f.orders.orders, 1)
	order := f.orders.orders[0]
	assert.Equal(t, testUser, order.CustomerID)
	assert.Equal(t, "suc-1", order.BranchID, "se asigna la primera sucursal")
	assert.Equal(t, entity.OrderStatusPagado, order.Status)
	// total = subtotal del carrito, sin envío: 15.00 + 2×35.00
	assert.True(t, dec("85.00").Equal(order.Total),
		"el total de la orden no incluye el costo de envío, obtuve %s", order.Total)

	require.Len(t, f.orders.details, 2, "una línea por producto, no por unidad")
	for _, d := range f.orders.details {
		assert.Equal(t, order.ID, d.OrderID)
	}

	c, _ := f.store.Get(ctx, testSession)
	assert.True(t, c.IsEmpty(), "el carrito debe quedar vacío tras confirmar")
}

func TestConfirm_SinTarjeta(t *testing.T) {
	f := newFixture()
	f.fillCart(t)

	_, err := f.uc.Confirm(context.Background(), testSession, testUser, dto.ConfirmOrderRequest{CardNumber: "   "})
	assert.ErrorIs(t, err, domain.ErrMissingPayment)
	assert.Empty(t, f.orders.orders)
}

func TestConfirm_CarritoVacio(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Confirm(context.Background(), testSession, testUser, cardOK)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestConfirm_SinDireccion(t *testing.T) {
	f := newFixture()
	f.fillCart(t)
	f.profiles.profile.Address = "  "

	_, err := f.uc.Confirm(context.Background(), testSession, testUser, cardOK)
	assert.ErrorIs(t, err, domain.ErrMissingAddress)
}

func TestConfirm_SinPerfil(t *testing.T) {
	f := newFixture()
	f.fillCart(t)
	f.profiles.profile = nil

	_, err := f.uc.Confirm(context.Background(), testSession, testUser, cardOK)
	assert.ErrorIs(t, err, domain.ErrMissingAddress)
}

func TestConfirm_SinSucursal(t *testing.T) {
	f := newFixture()
	f.fillCart(t)
	f.branches.branch = nil

	_, err := f.uc.Confirm(context.Background(), testSession, testUser, cardOK)
	assert.ErrorIs(t, err, domain.ErrNoBranch)
}

func TestConfirm_OrdenDePrecondiciones(t *testing.T) {
	// todas las precondiciones fallan a la vez; debe reportarse la primera:
	// tarjeta, luego carrito, luego dirección, luego sucursal
	f := newFixture()
	f.profiles.profile = nil
	f.branches.branch = nil

	_, err := f.uc.Confirm(context.Background(), testSession, testUser, dto.ConfirmOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrMissingPayment)

	_, err = f.uc.Confirm(context.Background(), testSession, testUser, cardOK)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestConfirm_ProductoDesaparecido_AbortaTodo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fillCart(t)

	delete(f.products.products, "fresa")

	_, err := f.uc.Confirm(ctx, testSession, testUser, cardOK)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.orders.orders, "no debe quedar orden parcial")

	c, _ := f.store.Get(ctx, testSession)
	assert.False(t, c.IsEmpty(), "el carrito se conserva para que el cliente lo revise")
}

func TestConfirm_FalloDePersistencia_ConservaElCarrito(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fillCart(t)
	f.orders.failDetail = true

	_, err := f.uc.Confirm(ctx, testSession, testUser, cardOK)
	require.Error(t, err)
	assert.Empty(t, f.orders.orders, "el rollback descarta la cabecera")
	assert.Empty(t, f.orders.details)

	c, _ := f.store.Get(ctx, testSession)
	assert.False(t, c.IsEmpty(), "un fallo de persistencia no debe vaciar el carrito")
}

// ──────────────────────────────────────────────────────────────────────────────
// Review / consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestReview_IncluyeCarritoYPerfil(t *testing.T) {
	f := newFixture()
	f.fillCart(t)

	out, err := f.uc.Review(context.Background(), testSession, testUser)
	require.NoError(t, err)
	assert.Len(t, out.Cart.Items, 2)
	assert.True(t, dec("85.00").Equal(out.Cart.Subtotal))
	assert.True(t, dec("125.00").Equal(out.Cart.TotalFinal), "85.00 + 40.00 de envío")
	require.NotNil(t, out.Profile)
	assert.Equal(t, "Av. Principal 123", out.Profile.Address)
}

func TestGetOrder_SoloDelPropietario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fillCart(t)

	confirmed, err := f.uc.Confirm(ctx, testSession, testUser, cardOK)
	require.NoError(t, err)

	out, err := f.uc.GetOrder(confirmed.OrderID, testUser)
	require.NoError(t, err)
	assert.Equal(t, confirmed.OrderID, out.ID)
	assert.Len(t, out.Lines, 2)

	_, err = f.uc.GetOrder(confirmed.OrderID, "otro-usuario")
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"la orden de otro cliente debe reportarse como inexistente")
}

func TestListOrders(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fillCart(t)

	confirmed, err := f.uc.Confirm(ctx, testSession, testUser, cardOK)
	require.NoError(t, err)

	list, err := f.uc.ListOrders(testUser)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, confirmed.OrderID, list[0].ID)

	vacia, err := f.uc.ListOrders("sin-compras")
	require.NoError(t, err)
	assert.Empty(t, vacia)
}
