package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carnicos-api/internal/application/sales"
	"github.com/jhoicas/carnicos-api/internal/domain"
	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner restaura el estado si fn falla, igual que
// el rollback de una transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	rows       []*entity.Sale
	failCreate error
}

func (r *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *s
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	for _, s := range r.rows {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) GetByTransactionID(_ context.Context, txID string) (*entity.Sale, error) {
	for _, s := range r.rows {
		if s.TransactionID == txID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) List(_ context.Context, _, _ *time.Time) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.rows))
	for _, s := range r.rows {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSaleRepo) Update(_ context.Context, s *entity.Sale) error {
	for i, row := range r.rows {
		if row.ID == s.ID {
			cp := *s
			r.rows[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeStoreRepo struct {
	repository.StoreRepository
	stores map[string]*entity.Store
}

func (r *fakeStoreRepo) GetByID(_ context.Context, id string) (*entity.Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

type fakeDiscountRepo struct {
	setting entity.DiscountSetting
}

func (r *fakeDiscountRepo) Get(_ context.Context) (*entity.DiscountSetting, error) {
	cp := r.setting
	return &cp, nil
}

func (r *fakeDiscountRepo) Update(_ context.Context, d *entity.DiscountSetting) error {
	r.setting = *d
	return nil
}

type fakePositionRepo struct {
	positions map[string]*entity.InventoryPosition // productID|location
}

func posKey(productID, location string) string { return productID + "|" + location }

func (r *fakePositionRepo) List(_ context.Context, _ string) ([]*entity.InventoryPosition, error) {
	out := make([]*entity.InventoryPosition, 0, len(r.positions))
	for _, p := range r.positions {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePositionRepo) Get(_ context.Context, productID, location string) (*entity.InventoryPosition, error) {
	p, ok := r.positions[posKey(productID, location)]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePositionRepo) GetForUpdate(_ context.Context, productID, location string) (*entity.InventoryPosition, error) {
	if p, ok := r.positions[posKey(productID, location)]; ok {
		cp := *p
		return &cp, nil
	}
	return &entity.InventoryPosition{ProductID: productID, Location: location}, nil
}

func (r *fakePositionRepo) Upsert(_ context.Context, pos *entity.InventoryPosition) error {
	key := posKey(pos.ProductID, pos.Location)
	if existing, ok := r.positions[key]; ok {
		pos.ID = existing.ID
	}
	cp := *pos
	r.positions[key] = &cp
	return nil
}

type fakeHistoryRepo struct {
	rows []*entity.SystemHistory
}

func (r *fakeHistoryRepo) Create(_ context.Context, h *entity.SystemHistory) error {
	cp := *h
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeHistoryRepo) List(_ context.Context, _ string, _ int) ([]*entity.SystemHistory, error) {
	return r.rows, nil
}

type fakeTxRunner struct {
	sales     *fakeSaleRepo
	positions *fakePositionRepo
	history   *fakeHistoryRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(repos repository.TxRepos) error) error {
	salesSnap := append([]*entity.Sale(nil), tx.sales.rows...)
	posSnap := make(map[string]*entity.InventoryPosition, len(tx.positions.positions))
	for k, v := range tx.positions.positions {
		cp := *v
		posSnap[k] = &cp
	}
	histSnap := append([]*entity.SystemHistory(nil), tx.history.rows...)

	err := fn(repository.TxRepos{
		Sales:     tx.sales,
		Positions: tx.positions,
		History:   tx.history,
	})
	if err != nil {
		tx.sales.rows = salesSnap
		tx.positions.positions = posSnap
		tx.history.rows = histSnap
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Arranque común
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc        *sales.UseCase
	sales     *fakeSaleRepo
	positions *fakePositionRepo
	history   *fakeHistoryRepo
	discount  *fakeDiscountRepo
}

func newFixture() *fixture {
	saleRepo := &fakeSaleRepo{}
	storeRepo := &fakeStoreRepo{stores: map[string]*entity.Store{
		"store-1": {ID: "store-1", Name: "Tienda Centro", Status: "active"},
	}}
	discountRepo := &fakeDiscountRepo{setting: entity.DiscountSetting{
		WholesaleMinUnits:        5,
		DiscountType:             entity.DiscountTypePercentage,
		WholesaleDiscountPercent: decimal.NewFromInt(10),
	}}
	positionRepo := &fakePositionRepo{positions: map[string]*entity.InventoryPosition{
		posKey("prod-1", "Tienda Centro"): {ID: "pos-1", ProductID: "prod-1", Location: "Tienda Centro", Quantity: 20},
	}}
	historyRepo := &fakeHistoryRepo{}
	runner := &fakeTxRunner{sales: saleRepo, positions: positionRepo, history: historyRepo}

	return &fixture{
		uc:        sales.NewUseCase(runner, saleRepo, storeRepo, discountRepo, nil),
		sales:     saleRepo,
		positions: positionRepo,
		history:   historyRepo,
		discount:  discountRepo,
	}
}

func item(productID string, qty int, price float64) entity.SaleItem {
	return entity.SaleItem{ProductID: productID, Quantity: qty, UnitPrice: decimal.NewFromFloat(price)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_VentaRetailDescuentaInventario(t *testing.T) {
	f := newFixture()

	sale, err := f.uc.Create(context.Background(), sales.CreateInput{
		TransactionID: "TX-001",
		StoreID:       "store-1",
		Items:         []entity.SaleItem{item("prod-1", 3, 10)},
		Tax:           decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	assert.True(t, sale.Subtotal.Equal(decimal.NewFromInt(30)))
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(32)), "total = subtotal + impuesto")
	assert.Equal(t, entity.SalesTypeRetail, sale.SalesType)

	pos := f.positions.positions[posKey("prod-1", "Tienda Centro")]
	assert.Equal(t, 17, pos.Quantity, "la venta descuenta el inventario de la tienda")
	require.Len(t, f.history.rows, 1)
	assert.Equal(t, "sale_created", f.history.rows[0].Action)
}

func TestCreate_MayoristaAplicaDescuentoConfigurado(t *testing.T) {
	f := newFixture()

	sale, err := f.uc.Create(context.Background(), sales.CreateInput{
		TransactionID: "TX-002",
		StoreID:       "store-1",
		Items:         []entity.SaleItem{item("prod-1", 5, 20)},
		SalesType:     entity.SalesTypeWholesale,
	})
	require.NoError(t, err)

	// 5 unidades x 20 = 100; 10% mayorista = 10.
	assert.True(t, sale.GlobalDiscount.Equal(decimal.NewFromInt(10)), "descuento fue %s", sale.GlobalDiscount)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(90)))
}

func TestCreate_InventarioAcotadoEnCero(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(context.Background(), sales.CreateInput{
		TransactionID: "TX-003",
		StoreID:       "store-1",
		Items:         []entity.SaleItem{item("prod-1", 50, 10)},
	})
	require.NoError(t, err)

	pos := f.positions.positions[posKey("prod-1", "Tienda Centro")]
	assert.Equal(t, 0, pos.Quantity, "vender más de lo que hay deja la posición en cero, nunca negativa")
}

func TestCreate_TransactionIDRepetidoRechazado(t *testing.T) {
	f := newFixture()

	input := sales.CreateInput{
		TransactionID: "TX-004",
		StoreID:       "store-1",
		Items:         []entity.SaleItem{item("prod-1", 1, 10)},
	}
	_, err := f.uc.Create(context.Background(), input)
	require.NoError(t, err)

	_, err = f.uc.Create(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, f.sales.rows, 1)
}

func TestCreate_TiendaInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(context.Background(), sales.CreateInput{
		TransactionID: "TX-005",
		StoreID:       "store-fantasma",
		Items:         []entity.SaleItem{item("prod-1", 1, 10)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_AtomicaAnteFalloDePersistencia(t *testing.T) {
	f := newFixture()
	f.sales.failCreate = errors.New("disco lleno")

	_, err := f.uc.Create(context.Background(), sales.CreateInput{
		TransactionID: "TX-006",
		StoreID:       "store-1",
		Items:         []entity.SaleItem{item("prod-1", 3, 10)},
	})
	require.Error(t, err)

	pos := f.positions.positions[posKey("prod-1", "Tienda Centro")]
	assert.Equal(t, 20, pos.Quantity, "el rollback no debe dejar inventario descontado sin venta")
	assert.Empty(t, f.sales.rows)
	assert.Empty(t, f.history.rows)
}

func TestCreate_LineaInvalidaRechazada(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(context.Background(), sales.CreateInput{
		TransactionID: "TX-007",
		StoreID:       "store-1",
		Items:         []entity.SaleItem{item("prod-1", 0, 10)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
