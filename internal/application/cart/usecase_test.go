package cart_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartuc "github.com/olivosverdes/fruteria-api/internal/application/cart"
	"github.com/olivosverdes/fruteria-api/internal/domain"
	cartdomain "github.com/olivosverdes/fruteria-api/internal/domain/cart"
	"github.com/olivosverdes/fruteria-api/internal/domain/entity"
	"github.com/olivosverdes/fruteria-api/internal/infrastructure/memory"
)

const testSession = "sess-test"

var shipping = decimal.RequireFromString("40.00")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fakeProductRepo sirve productos desde un mapa en memoria.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeProductRepo) ListFeatured(int) ([]*entity.Product, error)        { return f.List() }
func (f *fakeProductRepo) ListByCategoryName(string) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) ListOnOffer(time.Time) ([]*entity.Product, error)   { return nil, nil }
func (f *fakeProductRepo) Delete(id string) error                             { delete(f.products, id); return nil }

func fixedClock() time.Time {
	return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
}

func newFixture() (*cartuc.UseCase, *fakeProductRepo, *memory.CartStore) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	repo := &fakeProductRepo{products: map[string]*entity.Product{
		"manzana": {ID: "manzana", Name: "Manzana Roja", Price: dec("15.00")},
		"fresa": {
			ID:    "fresa",
			Name:  "Fresa",
			Price: dec("35.00"),
			Offer: &entity.Offer{
				StartDate:   &start,
				EndDate:     &end,
				DiscountPct: dec("20"),
			},
		},
	}}
	store := memory.NewCartStore()
	uc := cartuc.NewUseCase(store, repo, shipping, fixedClock)
	return uc, repo, store
}

func TestAdd_CapturaPrecioEfectivo(t *testing.T) {
	uc, _, store := newFixture()
	ctx := context.Background()

	out, err := uc.Add(ctx, testSession, "fresa")
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, 1, out.Quantity)

	c, err := store.Get(ctx, testSession)
	require.NoError(t, err)
	assert.True(t, dec("28.00").Equal(c.Items["fresa"].UnitPrice),
		"debe capturarse el precio con la oferta vigente aplicada: 35.00 - 20 por ciento")
}

func TestAdd_ProductoInexistente(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Add(context.Background(), testSession, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdd_ReAgregar_RefrescaPrecioCapturado(t *testing.T) {
	uc, repo, store := newFixture()
	ctx := context.Background()

	_, err := uc.Add(ctx, testSession, "manzana")
	require.NoError(t, err)

	// el precio de lista sube entre un agregado y el siguiente
	repo.products["manzana"].Price = dec("18.00")

	_, err = uc.Add(ctx, testSession, "manzana")
	require.NoError(t, err)

	c, _ := store.Get(ctx, testSession)
	entry := c.Items["manzana"]
	assert.Equal(t, 2, entry.Quantity)
	assert.True(t, dec("18.00").Equal(entry.UnitPrice),
		"el precio capturado debe derivar al valor más reciente")
}

func TestDecrease_EnMinimo_NoMutaElAlmacen(t *testing.T) {
	uc, _, store := newFixture()
	ctx := context.Background()

	_, err := uc.Add(ctx, testSession, "manzana")
	require.NoError(t, err)

	out, err := uc.Decrease(ctx, testSession, "manzana")
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, "La cantidad mínima es 1.", out.Message)
	assert.Equal(t, 1, out.NewQuantity)

	c, _ := store.Get(ctx, testSession)
	assert.Equal(t, 1, c.Items["manzana"].Quantity)
}

func TestIncrease_SesionSinCarrito_ReportaNoExito(t *testing.T) {
	uc, _, _ := newFixture()

	out, err := uc.Increase(context.Background(), "sesion-nueva", "manzana")
	require.NoError(t, err)
	assert.False(t, out.Success, "ajustar sobre una sesión sin carrito no es un error, solo no-éxito")
	assert.True(t, out.NewSubtotal.IsZero())
}

func TestIncrease_RecalculaTotales(t *testing.T) {
	uc, _, _ := newFixture()
	ctx := context.Background()

	_, err := uc.Add(ctx, testSession, "manzana")
	require.NoError(t, err)

	out, err := uc.Increase(ctx, testSession, "manzana")
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, 2, out.NewQuantity)
	assert.True(t, dec("30.00").Equal(out.NewSubtotal))
	assert.True(t, dec("70.00").Equal(out.NewTotalFinal), "30.00 + 40.00 de envío")
}

func TestRemove_UltimaLinea_TotalVuelveACero(t *testing.T) {
	uc, _, _ := newFixture()
	ctx := context.Background()

	_, err := uc.Add(ctx, testSession, "manzana")
	require.NoError(t, err)

	out, err := uc.Remove(ctx, testSession, "manzana")
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.True(t, out.NewSubtotal.IsZero())
	assert.True(t, out.NewTotalFinal.IsZero(), "sin productos no se cobra envío")
}

func TestView_ReparaLineasHuerfanas(t *testing.T) {
	uc, repo, store := newFixture()
	ctx := context.Background()

	_, err := uc.Add(ctx, testSession, "manzana")
	require.NoError(t, err)
	_, err = uc.Add(ctx, testSession, "fresa")
	require.NoError(t, err)

	// el producto desaparece del catálogo con la línea aún en la sesión
	delete(repo.products, "fresa")

	view, err := uc.View(ctx, testSession)
	require.NoError(t, err)
	require.Len(t, view.Items, 1, "la línea huérfana debe descartarse de la vista")
	assert.Equal(t, "manzana", view.Items[0].ProductID)
	assert.True(t, dec("15.00").Equal(view.Subtotal))

	c, _ := store.Get(ctx, testSession)
	assert.NotContains(t, c.Items, "fresa", "la sesión debe reescribirse saneada")
}

func TestView_ReparaCantidadesCorruptas(t *testing.T) {
	uc, _, store := newFixture()
	ctx := context.Background()

	corrupto := cartdomain.New()
	corrupto.Items["manzana"] = cartdomain.Entry{Quantity: 0, UnitPrice: dec("15.00")}
	require.NoError(t, store.Save(ctx, testSession, corrupto))

	view, err := uc.View(ctx, testSession)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.TotalFinal.IsZero())
}

func TestView_PrecioCapturadoNoSeRecalcula(t *testing.T) {
	uc, repo, _ := newFixture()
	ctx := context.Background()

	_, err := uc.Add(ctx, testSession, "manzana")
	require.NoError(t, err)

	// el precio cambia después de agregar; la vista no lo refleja
	repo.products["manzana"].Price = dec("99.00")

	view, err := uc.View(ctx, testSession)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.True(t, dec("15.00").Equal(view.Items[0].UnitPrice),
		"la vista muestra el precio capturado al agregar, no el actual")
}
