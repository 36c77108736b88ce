package catalog_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivosverdes/fruteria-api/internal/application/catalog"
	"github.com/olivosverdes/fruteria-api/internal/application/dto"
	"github.com/olivosverdes/fruteria-api/internal/domain"
	"github.com/olivosverdes/fruteria-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

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
func (f *fakeProductRepo) ListFeatured(int) ([]*entity.Product, error) { return f.List() }
func (f *fakeProductRepo) ListByCategoryName(name string) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) ListOnOffer(today time.Time) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.Offer != nil && p.Offer.StartDate != nil && p.Offer.EndDate != nil &&
			!today.Before(*p.Offer.StartDate) && !today.After(*p.Offer.EndDate) {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProductRepo) Delete(id string) error { delete(f.products, id); return nil }

type fakeBranchRepo struct {
	branch *entity.Branch
}

func (f *fakeBranchRepo) Create(b *entity.Branch) error          { f.branch = b; return nil }
func (f *fakeBranchRepo) GetByID(string) (*entity.Branch, error) { return f.branch, nil }
func (f *fakeBranchRepo) GetFirst() (*entity.Branch, error)      { return f.branch, nil }
func (f *fakeBranchRepo) List() ([]*entity.Branch, error)        { return nil, nil }
func (f *fakeBranchRepo) Update(b *entity.Branch) error          { f.branch = b; return nil }
func (f *fakeBranchRepo) Delete(string) error                    { f.branch = nil; return nil }

func fixedClock() time.Time {
	return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
}

func newUseCase() (*catalog.ProductUseCase, *fakeProductRepo, *fakeBranchRepo) {
	repo := &fakeProductRepo{products: make(map[string]*entity.Product)}
	branches := &fakeBranchRepo{branch: &entity.Branch{ID: "suc-1", Name: "Centro"}}
	return catalog.NewProductUseCase(repo, branches, fixedClock), repo, branches
}

func offerMarzo(pct string) *entity.Offer {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	return &entity.Offer{
		ID:          "of-marzo",
		Name:        "Oferta de Marzo",
		StartDate:   &start,
		EndDate:     &end,
		DiscountPct: dec(pct),
	}
}

func TestCreate_SinSucursal_AsignaLaPrimera(t *testing.T) {
	uc, repo, _ := newUseCase()

	out, err := uc.Create(dto.CreateProductRequest{Name: "Manzana", Price: dec("15.00")})
	require.NoError(t, err)
	assert.Equal(t, "suc-1", out.BranchID)
	assert.Equal(t, "suc-1", repo.products[out.ID].BranchID)
}

func TestCreate_SinSucursalConfigurada(t *testing.T) {
	uc, _, branches := newUseCase()
	branches.branch = nil

	_, err := uc.Create(dto.CreateProductRequest{Name: "Manzana", Price: dec("15.00")})
	assert.ErrorIs(t, err, domain.ErrNoBranch)
}

func TestCreate_PrecioNegativo(t *testing.T) {
	uc, _, _ := newUseCase()
	_, err := uc.Create(dto.CreateProductRequest{Name: "Manzana", Price: dec("-1.00")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByID_ConOfertaVigente_TraePrecioEfectivo(t *testing.T) {
	uc, repo, _ := newUseCase()
	repo.products["fresa"] = &entity.Product{
		ID:       "fresa",
		Name:     "Fresa",
		Price:    dec("35.00"),
		BranchID: "suc-1",
		Offer:    offerMarzo("20"),
	}

	out, err := uc.GetByID("fresa")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, dec("35.00").Equal(out.Price), "el precio de lista se conserva en la respuesta")
	assert.True(t, dec("28.00").Equal(out.EffectivePrice))
	assert.True(t, out.OnOffer)
	require.NotNil(t, out.Offer)
	assert.Equal(t, "Oferta de Marzo", out.Offer.Name)
}

func TestGetByID_OfertaFueraDeVigencia(t *testing.T) {
	uc, repo, _ := newUseCase()
	pasada := offerMarzo("20")
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	pasada.StartDate, pasada.EndDate = &start, &end
	repo.products["fresa"] = &entity.Product{
		ID:       "fresa",
		Name:     "Fresa",
		Price:    dec("35.00"),
		BranchID: "suc-1",
		Offer:    pasada,
	}

	out, err := uc.GetByID("fresa")
	require.NoError(t, err)
	assert.True(t, dec("35.00").Equal(out.EffectivePrice),
		"una oferta vencida no altera el precio efectivo")
	assert.False(t, out.OnOffer)
}

func TestGetByID_Inexistente(t *testing.T) {
	uc, _, _ := newUseCase()
	out, err := uc.GetByID("fantasma")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestListOnOffer_UsaElRelojInyectado(t *testing.T) {
	uc, repo, _ := newUseCase()
	repo.products["fresa"] = &entity.Product{
		ID: "fresa", Name: "Fresa", Price: dec("35.00"), BranchID: "suc-1", Offer: offerMarzo("20"),
	}
	repo.products["manzana"] = &entity.Product{
		ID: "manzana", Name: "Manzana", Price: dec("15.00"), BranchID: "suc-1",
	}

	out, err := uc.ListOnOffer()
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "fresa", out.Items[0].ID)
	assert.True(t, dec("28.00").Equal(out.Items[0].EffectivePrice))
}

func TestUpdate_Inexistente(t *testing.T) {
	uc, _, _ := newUseCase()
	nombre := "Nuevo"
	out, err := uc.Update("fantasma", dto.UpdateProductRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUpdate_CambiaSoloLosCamposEnviados(t *testing.T) {
	uc, repo, _ := newUseCase()
	repo.products["manzana"] = &entity.Product{
		ID: "manzana", Name: "Manzana", Price: dec("15.00"), BranchID: "suc-1", Description: "fruta roja",
	}

	precio := dec("17.50")
	out, err := uc.Update("manzana", dto.UpdateProductRequest{Price: &precio})
	require.NoError(t, err)
	assert.True(t, dec("17.50").Equal(out.Price))
	assert.Equal(t, "Manzana", out.Name)
	assert.Equal(t, "fruta roja", out.Description)
}
