package production_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carnicos-api/internal/application/production"
	"github.com/jhoicas/carnicos-api/internal/domain"
	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductionRepo struct {
	items map[string]*entity.ProductionRecord
}

func (r *fakeProductionRepo) Create(_ context.Context, rec *entity.ProductionRecord) error {
	cp := *rec
	r.items[rec.ID] = &cp
	return nil
}

func (r *fakeProductionRepo) GetByID(_ context.Context, id string) (*entity.ProductionRecord, error) {
	rec, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeProductionRepo) GetByBatchNumber(_ context.Context, batch string) (*entity.ProductionRecord, error) {
	for _, rec := range r.items {
		if rec.BatchNumber == batch {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductionRepo) List(_ context.Context) ([]*entity.ProductionRecord, error) {
	out := make([]*entity.ProductionRecord, 0, len(r.items))
	for _, rec := range r.items {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductionRepo) UpdateStatus(_ context.Context, id, status string) error {
	rec, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	rec.Status = status
	return nil
}

func (r *fakeProductionRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeProductionRepo) SumCompletedByProduct(_ context.Context, productID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, rec := range r.items {
		if rec.ProductID == productID && rec.Status == entity.ProductionStatusCompleted {
			total = total.Add(rec.Quantity)
		}
	}
	return total, nil
}

type fakeProductRepo struct {
	repository.ProductRepository
	products map[string]*entity.Product
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

type fakeIngredientRepo struct {
	repository.IngredientRepository
	items map[string]*entity.Ingredient
}

func (r *fakeIngredientRepo) GetByID(_ context.Context, id string) (*entity.Ingredient, error) {
	ing, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *ing
	return &cp, nil
}

type fakePositionRepo struct {
	repository.InventoryPositionRepository
	positions map[string]*entity.InventoryPosition
}

func posKey(productID, location string) string { return productID + "|" + location }

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
	production *fakeProductionRepo
	positions  *fakePositionRepo
	history    *fakeHistoryRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(repos repository.TxRepos) error) error {
	return fn(repository.TxRepos{
		Production: tx.production,
		Positions:  tx.positions,
		History:    tx.history,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Arranque común
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc         *production.UseCase
	production *fakeProductionRepo
	positions  *fakePositionRepo
	history    *fakeHistoryRepo
}

func newFixture() *fixture {
	productionRepo := &fakeProductionRepo{items: map[string]*entity.ProductionRecord{}}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Morcilla", SKU: "MOR-01"},
	}}
	ingredientRepo := &fakeIngredientRepo{items: map[string]*entity.Ingredient{
		"ing-1": {ID: "ing-1", Name: "Cebolla", Code: "CEB-01", Unit: "kg"},
	}}
	positionRepo := &fakePositionRepo{positions: map[string]*entity.InventoryPosition{}}
	historyRepo := &fakeHistoryRepo{}
	runner := &fakeTxRunner{production: productionRepo, positions: positionRepo, history: historyRepo}

	return &fixture{
		uc:         production.NewUseCase(runner, productionRepo, productRepo, ingredientRepo),
		production: productionRepo,
		positions:  positionRepo,
		history:    historyRepo,
	}
}

func facilityQty(f *fixture, productID string) int {
	pos, ok := f.positions.positions[posKey(productID, production.FacilityLocation)]
	if !ok {
		return -1
	}
	return pos.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_LoteEnProgresoNoTocaPlanta(t *testing.T) {
	f := newFixture()

	rec, err := f.uc.Create(context.Background(), production.CreateInput{
		ProductID:   "prod-1",
		Quantity:    decimal.NewFromInt(40),
		BatchNumber: "L-001",
		Ingredients: []production.IngredientInput{{IngredientID: "ing-1", Quantity: decimal.NewFromInt(5)}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ProductionStatusInProgress, rec.Status)
	require.Len(t, rec.Ingredients, 1)
	assert.Equal(t, "Cebolla", rec.Ingredients[0].IngredientName, "el nombre se desnormaliza al crear")
	assert.Equal(t, -1, facilityQty(f, "prod-1"), "un lote en progreso no crea posición de planta")
}

func TestCreate_LoteCompletadoSincronizaPlanta(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(context.Background(), production.CreateInput{
		ProductID:   "prod-1",
		Quantity:    decimal.NewFromInt(25),
		BatchNumber: "L-002",
		Status:      entity.ProductionStatusCompleted,
	})
	require.NoError(t, err)

	assert.Equal(t, 25, facilityQty(f, "prod-1"))
}

func TestCreate_BatchNumberRepetidoRechazado(t *testing.T) {
	f := newFixture()

	input := production.CreateInput{
		ProductID:   "prod-1",
		Quantity:    decimal.NewFromInt(10),
		BatchNumber: "L-003",
	}
	_, err := f.uc.Create(context.Background(), input)
	require.NoError(t, err)

	_, err = f.uc.Create(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdateStatus_CompletarAcumulaLotesDelProducto(t *testing.T) {
	f := newFixture()

	first, err := f.uc.Create(context.Background(), production.CreateInput{
		ProductID:   "prod-1",
		Quantity:    decimal.NewFromInt(30),
		BatchNumber: "L-004",
		Status:      entity.ProductionStatusCompleted,
	})
	require.NoError(t, err)
	_ = first

	second, err := f.uc.Create(context.Background(), production.CreateInput{
		ProductID:   "prod-1",
		Quantity:    decimal.NewFromInt(20),
		BatchNumber: "L-005",
	})
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(context.Background(), second.ID, entity.ProductionStatusCompleted, "", "")
	require.NoError(t, err)

	assert.Equal(t, 50, facilityQty(f, "prod-1"),
		"la planta refleja la suma de todos los lotes completados")
}

func TestUpdateStatus_CompletadoEsTerminal(t *testing.T) {
	f := newFixture()

	rec, err := f.uc.Create(context.Background(), production.CreateInput{
		ProductID:   "prod-1",
		Quantity:    decimal.NewFromInt(10),
		BatchNumber: "L-006",
		Status:      entity.ProductionStatusCompleted,
	})
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(context.Background(), rec.ID, entity.ProductionStatusInProgress, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"un lote completado no puede volver a in-progress")
}

func TestUpdateStatus_SincronizacionIdempotente(t *testing.T) {
	f := newFixture()

	rec, err := f.uc.Create(context.Background(), production.CreateInput{
		ProductID:   "prod-1",
		Quantity:    decimal.NewFromInt(15),
		BatchNumber: "L-007",
		Status:      entity.ProductionStatusCompleted,
	})
	require.NoError(t, err)

	// Re-completar el mismo lote recalcula, no duplica.
	_, err = f.uc.UpdateStatus(context.Background(), rec.ID, entity.ProductionStatusCompleted, "", "")
	require.NoError(t, err)

	assert.Equal(t, 15, facilityQty(f, "prod-1"))
}

func TestDelete_LoteCompletadoRecalculaPlanta(t *testing.T) {
	f := newFixture()

	first, err := f.uc.Create(context.Background(), production.CreateInput{
		ProductID:   "prod-1",
		Quantity:    decimal.NewFromInt(30),
		BatchNumber: "L-010",
		Status:      entity.ProductionStatusCompleted,
	})
	require.NoError(t, err)

	_, err = f.uc.Create(context.Background(), production.CreateInput{
		ProductID:   "prod-1",
		Quantity:    decimal.NewFromInt(20),
		BatchNumber: "L-011",
		Status:      entity.ProductionStatusCompleted,
	})
	require.NoError(t, err)
	require.Equal(t, 50, facilityQty(f, "prod-1"))

	require.NoError(t, f.uc.Delete(context.Background(), first.ID, "", ""))

	assert.Equal(t, 20, facilityQty(f, "prod-1"),
		"borrar un lote completado descuenta su aporte de la planta")
	_, err = f.uc.Get(context.Background(), first.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_CantidadInvalidaRechazada(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(context.Background(), production.CreateInput{
		ProductID:   "prod-1",
		Quantity:    decimal.Zero,
		BatchNumber: "L-008",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_IngredienteInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(context.Background(), production.CreateInput{
		ProductID:   "prod-1",
		Quantity:    decimal.NewFromInt(5),
		BatchNumber: "L-009",
		Ingredients: []production.IngredientInput{{IngredientID: "ing-fantasma", Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
