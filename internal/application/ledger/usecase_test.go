package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carnicos-api/internal/application/ledger"
	"github.com/jhoicas/carnicos-api/internal/domain"
	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el libro de ajustes.
//
// El fakeTxRunner implementa rollback de verdad: toma un snapshot del estado
// antes de correr fn y lo restaura si fn falla. Así los tests de atomicidad
// verifican que un fallo a mitad de la transacción no deja stock sin su
// registro de auditoría.
// ──────────────────────────────────────────────────────────────────────────────

type fakeIngredientRepo struct {
	items map[string]*entity.Ingredient
}

func (r *fakeIngredientRepo) Create(_ context.Context, ing *entity.Ingredient) error {
	r.items[ing.ID] = ing
	return nil
}

func (r *fakeIngredientRepo) GetByID(_ context.Context, id string) (*entity.Ingredient, error) {
	ing, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *ing
	return &cp, nil
}

func (r *fakeIngredientRepo) GetByCode(_ context.Context, code string) (*entity.Ingredient, error) {
	for _, ing := range r.items {
		if ing.Code == code {
			cp := *ing
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeIngredientRepo) List(_ context.Context, _ string) ([]*entity.Ingredient, error) {
	out := make([]*entity.Ingredient, 0, len(r.items))
	for _, ing := range r.items {
		cp := *ing
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeIngredientRepo) Update(_ context.Context, ing *entity.Ingredient) error {
	r.items[ing.ID] = ing
	return nil
}

func (r *fakeIngredientRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeIngredientRepo) GetForUpdate(ctx context.Context, id string) (*entity.Ingredient, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeIngredientRepo) UpdateStock(_ context.Context, id string, stock decimal.Decimal) error {
	ing, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	ing.Stock = stock
	return nil
}

type fakeAdjustmentRepo struct {
	rows       []*entity.StockAdjustment
	failCreate error
}

func (r *fakeAdjustmentRepo) Create(_ context.Context, adj *entity.StockAdjustment) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *adj
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeAdjustmentRepo) ListByIngredient(_ context.Context, ingredientID string, limit int) ([]*entity.StockAdjustment, error) {
	var out []*entity.StockAdjustment
	for i := len(r.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if r.rows[i].IngredientID == ingredientID {
			cp := *r.rows[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeAdjustmentRepo) List(_ context.Context, f repository.AdjustmentFilter) ([]*entity.StockAdjustment, int, error) {
	var matched []*entity.StockAdjustment
	for i := len(r.rows) - 1; i >= 0; i-- {
		a := r.rows[i]
		if f.IngredientID != "" && a.IngredientID != f.IngredientID {
			continue
		}
		if f.Type != "" && a.Type != f.Type {
			continue
		}
		if f.UserID != "" && a.UserID != f.UserID {
			continue
		}
		cp := *a
		matched = append(matched, &cp)
	}
	total := len(matched)
	if f.Offset < len(matched) {
		matched = matched[f.Offset:]
	} else {
		matched = nil
	}
	if len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}

func (r *fakeAdjustmentRepo) Summary(_ context.Context, from, to *time.Time) (*repository.AdjustmentSummary, error) {
	sum := &repository.AdjustmentSummary{
		TotalAdditions: decimal.Zero,
		TotalRemovals:  decimal.Zero,
		NetChange:      decimal.Zero,
	}
	for _, a := range r.rows {
		if from != nil && a.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && a.CreatedAt.After(*to) {
			continue
		}
		sum.TotalAdjustments++
		if a.Type == entity.AdjustmentTypeAdd {
			sum.TotalAdditions = sum.TotalAdditions.Add(a.Quantity)
			sum.NetChange = sum.NetChange.Add(a.Quantity)
		} else {
			sum.TotalRemovals = sum.TotalRemovals.Add(a.Quantity)
			sum.NetChange = sum.NetChange.Sub(a.Quantity)
		}
	}
	return sum, nil
}

func (r *fakeAdjustmentRepo) Recent(_ context.Context, limit int) ([]*entity.StockAdjustment, error) {
	var out []*entity.StockAdjustment
	for i := len(r.rows) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *r.rows[i]
		out = append(out, &cp)
	}
	return out, nil
}

type fakePositionRepo struct {
	items map[string]*entity.InventoryPosition // key: productID + "|" + location
}

func posKey(productID, location string) string { return productID + "|" + location }

func (r *fakePositionRepo) List(_ context.Context, location string) ([]*entity.InventoryPosition, error) {
	var out []*entity.InventoryPosition
	for _, p := range r.items {
		if location == "" || p.Location == location {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePositionRepo) Get(_ context.Context, productID, location string) (*entity.InventoryPosition, error) {
	p, ok := r.items[posKey(productID, location)]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePositionRepo) GetForUpdate(ctx context.Context, productID, location string) (*entity.InventoryPosition, error) {
	p, err := r.Get(ctx, productID, location)
	if err != nil || p != nil {
		return p, err
	}
	return &entity.InventoryPosition{ProductID: productID, Location: location}, nil
}

func (r *fakePositionRepo) Upsert(_ context.Context, pos *entity.InventoryPosition) error {
	key := posKey(pos.ProductID, pos.Location)
	if existing, ok := r.items[key]; ok {
		pos.ID = existing.ID
	}
	cp := *pos
	r.items[key] = &cp
	return nil
}

type fakeProductRepo struct {
	repository.ProductRepository
	items map[string]*entity.Product
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

type fakeHistoryRepo struct {
	rows []*entity.SystemHistory
}

func (r *fakeHistoryRepo) Create(_ context.Context, h *entity.SystemHistory) error {
	cp := *h
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeHistoryRepo) List(_ context.Context, _ string, limit int) ([]*entity.SystemHistory, error) {
	var out []*entity.SystemHistory
	for i := len(r.rows) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *r.rows[i]
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTxRunner corre fn sobre los fakes y restaura el snapshot si falla.
type fakeTxRunner struct {
	ingredients *fakeIngredientRepo
	adjustments *fakeAdjustmentRepo
	positions   *fakePositionRepo
	products    *fakeProductRepo
	history     *fakeHistoryRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(repos repository.TxRepos) error) error {
	ingSnap := make(map[string]*entity.Ingredient, len(tx.ingredients.items))
	for k, v := range tx.ingredients.items {
		cp := *v
		ingSnap[k] = &cp
	}
	adjSnap := append([]*entity.StockAdjustment(nil), tx.adjustments.rows...)
	posSnap := make(map[string]*entity.InventoryPosition, len(tx.positions.items))
	for k, v := range tx.positions.items {
		cp := *v
		posSnap[k] = &cp
	}
	histSnap := append([]*entity.SystemHistory(nil), tx.history.rows...)

	err := fn(repository.TxRepos{
		Ingredients: tx.ingredients,
		Adjustments: tx.adjustments,
		Positions:   tx.positions,
		Products:    tx.products,
		History:     tx.history,
	})
	if err != nil {
		tx.ingredients.items = ingSnap
		tx.adjustments.rows = adjSnap
		tx.positions.items = posSnap
		tx.history.rows = histSnap
	}
	return err
}

type ledgerFixture struct {
	uc          *ledger.UseCase
	ingredients *fakeIngredientRepo
	adjustments *fakeAdjustmentRepo
	positions   *fakePositionRepo
	products    *fakeProductRepo
	history     *fakeHistoryRepo
}

func newFixture() *ledgerFixture {
	f := &ledgerFixture{
		ingredients: &fakeIngredientRepo{items: map[string]*entity.Ingredient{}},
		adjustments: &fakeAdjustmentRepo{},
		positions:   &fakePositionRepo{items: map[string]*entity.InventoryPosition{}},
		products:    &fakeProductRepo{items: map[string]*entity.Product{}},
		history:     &fakeHistoryRepo{},
	}
	runner := &fakeTxRunner{
		ingredients: f.ingredients,
		adjustments: f.adjustments,
		positions:   f.positions,
		products:    f.products,
		history:     f.history,
	}
	f.uc = ledger.NewUseCase(runner, f.ingredients, f.adjustments, f.positions, f.products, nil)
	return f
}

func (f *ledgerFixture) seedIngredient(id, name string, stock float64) {
	f.ingredients.items[id] = &entity.Ingredient{
		ID:    id,
		Name:  name,
		Code:  "ING-" + id,
		Unit:  "kg",
		Stock: decimal.NewFromFloat(stock),
	}
}

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// ──────────────────────────────────────────────────────────────────────────────
// Adjust
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_SumaFraccional(t *testing.T) {
	f := newFixture()
	f.seedIngredient("carne", "Carne de cerdo", 10)

	adj, ing, err := f.uc.Adjust(context.Background(), ledger.AdjustInput{
		IngredientID: "carne",
		Type:         entity.AdjustmentTypeAdd,
		Quantity:     dec(5.5),
		Reason:       "compra semanal",
		UserName:     "Laura",
	})
	require.NoError(t, err)

	assert.True(t, ing.Stock.Equal(dec(15.5)), "stock esperado 15.5, fue %s", ing.Stock)
	assert.True(t, adj.PreviousStock.Equal(dec(10)))
	assert.True(t, adj.NewStock.Equal(dec(15.5)))
	assert.Equal(t, "Laura", adj.UserName)
	assert.Equal(t, "Carne de cerdo", adj.IngredientName)
	assert.Equal(t, "kg", adj.Unit)
}

func TestAdjust_RemoveAcotadoEnCero(t *testing.T) {
	f := newFixture()
	f.seedIngredient("sal", "Sal", 3)

	adj, ing, err := f.uc.Adjust(context.Background(), ledger.AdjustInput{
		IngredientID: "sal",
		Type:         entity.AdjustmentTypeRemove,
		Quantity:     dec(10),
	})
	require.NoError(t, err)

	// El stock nunca baja de cero; el registro guarda la horquilla real.
	assert.True(t, ing.Stock.IsZero(), "stock esperado 0, fue %s", ing.Stock)
	assert.True(t, adj.PreviousStock.Equal(dec(3)))
	assert.True(t, adj.NewStock.IsZero())
	assert.True(t, adj.Quantity.Equal(dec(10)), "la magnitud pedida se conserva tal cual")
}

func TestAdjust_MagnitudInvalidaNoMutaNada(t *testing.T) {
	f := newFixture()
	f.seedIngredient("pimienta", "Pimienta", 7)

	for _, qty := range []decimal.Decimal{decimal.Zero, dec(-2)} {
		_, _, err := f.uc.Adjust(context.Background(), ledger.AdjustInput{
			IngredientID: "pimienta",
			Type:         entity.AdjustmentTypeAdd,
			Quantity:     qty,
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	ing, _ := f.ingredients.GetByID(context.Background(), "pimienta")
	assert.True(t, ing.Stock.Equal(dec(7)), "el stock no debe cambiar")
	assert.Empty(t, f.adjustments.rows, "no debe quedar registro de auditoría")
}

func TestAdjust_TipoDesconocidoRechazado(t *testing.T) {
	f := newFixture()
	f.seedIngredient("ajo", "Ajo", 5)

	_, _, err := f.uc.Adjust(context.Background(), ledger.AdjustInput{
		IngredientID: "ajo",
		Type:         "set",
		Quantity:     dec(1),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.adjustments.rows)
}

func TestAdjust_IngredienteInexistente(t *testing.T) {
	f := newFixture()

	_, _, err := f.uc.Adjust(context.Background(), ledger.AdjustInput{
		IngredientID: "no-existe",
		Type:         entity.AdjustmentTypeAdd,
		Quantity:     dec(1),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjust_UserNamePorDefectoSystem(t *testing.T) {
	f := newFixture()
	f.seedIngredient("tripa", "Tripa natural", 2)

	adj, _, err := f.uc.Adjust(context.Background(), ledger.AdjustInput{
		IngredientID: "tripa",
		Type:         entity.AdjustmentTypeAdd,
		Quantity:     dec(1),
	})
	require.NoError(t, err)
	assert.Equal(t, "System", adj.UserName)
}

func TestAdjust_ExactamenteUnRegistroPorAjuste(t *testing.T) {
	f := newFixture()
	f.seedIngredient("carne", "Carne", 20)

	for i := 0; i < 3; i++ {
		_, _, err := f.uc.Adjust(context.Background(), ledger.AdjustInput{
			IngredientID: "carne",
			Type:         entity.AdjustmentTypeRemove,
			Quantity:     dec(2),
		})
		require.NoError(t, err)
	}
	assert.Len(t, f.adjustments.rows, 3)
	assert.Len(t, f.history.rows, 3, "cada ajuste deja también su entrada en el historial")
}

func TestAdjust_AtomicoAnteFalloDeAuditoria(t *testing.T) {
	f := newFixture()
	f.seedIngredient("carne", "Carne", 10)
	f.adjustments.failCreate = errors.New("disco lleno")

	_, _, err := f.uc.Adjust(context.Background(), ledger.AdjustInput{
		IngredientID: "carne",
		Type:         entity.AdjustmentTypeAdd,
		Quantity:     dec(5),
	})
	require.Error(t, err)

	// Rollback: el stock queda como estaba y no hay registro huérfano.
	ing, _ := f.ingredients.GetByID(context.Background(), "carne")
	assert.True(t, ing.Stock.Equal(dec(10)))
	assert.Empty(t, f.adjustments.rows)
	assert.Empty(t, f.history.rows)
}

func TestAdjust_SecuenciaEncadenaPreviousStock(t *testing.T) {
	f := newFixture()
	f.seedIngredient("carne", "Carne", 0)

	steps := []struct {
		typ  string
		qty  float64
		prev float64
		next float64
	}{
		{entity.AdjustmentTypeAdd, 10, 0, 10},
		{entity.AdjustmentTypeAdd, 5, 10, 15},
		{entity.AdjustmentTypeRemove, 3, 15, 12},
	}
	for _, s := range steps {
		adj, _, err := f.uc.Adjust(context.Background(), ledger.AdjustInput{
			IngredientID: "carne",
			Type:         s.typ,
			Quantity:     dec(s.qty),
		})
		require.NoError(t, err)
		assert.True(t, adj.PreviousStock.Equal(dec(s.prev)), "previous_stock esperado %v, fue %s", s.prev, adj.PreviousStock)
		assert.True(t, adj.NewStock.Equal(dec(s.next)))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// History, List y Summary
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_MasRecientesPrimeroConLimite(t *testing.T) {
	f := newFixture()
	f.seedIngredient("carne", "Carne", 100)

	for _, reason := range []string{"A", "B", "C"} {
		_, _, err := f.uc.Adjust(context.Background(), ledger.AdjustInput{
			IngredientID: "carne",
			Type:         entity.AdjustmentTypeRemove,
			Quantity:     dec(1),
			Reason:       reason,
		})
		require.NoError(t, err)
	}

	hist, err := f.uc.History(context.Background(), "carne", 2)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "C", hist[0].Reason)
	assert.Equal(t, "B", hist[1].Reason)
}

func TestHistory_IngredienteInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.uc.History(context.Background(), "fantasma", 10)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FiltraPorTipo(t *testing.T) {
	f := newFixture()
	f.seedIngredient("carne", "Carne", 50)

	for _, typ := range []string{"add", "remove", "add"} {
		_, _, err := f.uc.Adjust(context.Background(), ledger.AdjustInput{
			IngredientID: "carne",
			Type:         typ,
			Quantity:     dec(2),
		})
		require.NoError(t, err)
	}

	rows, total, err := f.uc.List(context.Background(), repository.AdjustmentFilter{Type: "add"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, rows, 2)

	_, _, err = f.uc.List(context.Background(), repository.AdjustmentFilter{Type: "subtract"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSummary_AgregadosYRecientes(t *testing.T) {
	f := newFixture()
	f.seedIngredient("carne", "Carne", 0)

	for _, s := range []struct {
		typ string
		qty float64
	}{
		{"add", 10},
		{"add", 5},
		{"remove", 3},
	} {
		_, _, err := f.uc.Adjust(context.Background(), ledger.AdjustInput{
			IngredientID: "carne",
			Type:         s.typ,
			Quantity:     dec(s.qty),
		})
		require.NoError(t, err)
	}

	res, err := f.uc.Summary(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.True(t, res.Summary.TotalAdditions.Equal(dec(15)))
	assert.True(t, res.Summary.TotalRemovals.Equal(dec(3)))
	assert.Equal(t, 3, res.Summary.TotalAdjustments)
	assert.True(t, res.Summary.NetChange.Equal(dec(12)))
	assert.Len(t, res.Recent, 3)
	// El más reciente primero.
	assert.Equal(t, entity.AdjustmentTypeRemove, res.Recent[0].Type)
}

// ──────────────────────────────────────────────────────────────────────────────
// SetPosition
// ──────────────────────────────────────────────────────────────────────────────

func TestSetPosition_UpsertIdempotente(t *testing.T) {
	f := newFixture()
	f.products.items["chorizo"] = &entity.Product{ID: "chorizo", Name: "Chorizo"}

	in := ledger.SetPositionInput{ProductID: "chorizo", Location: "Tienda Centro", Quantity: 40}

	first, err := f.uc.SetPosition(context.Background(), in)
	require.NoError(t, err)
	second, err := f.uc.SetPosition(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 40, second.Quantity)
	assert.Equal(t, first.ID, second.ID, "repetir la misma llamada no crea otra fila")

	positions, _ := f.positions.List(context.Background(), "")
	assert.Len(t, positions, 1)
}

func TestSetPosition_UbicacionesIndependientes(t *testing.T) {
	f := newFixture()
	f.products.items["jamon"] = &entity.Product{ID: "jamon", Name: "Jamón"}

	_, err := f.uc.SetPosition(context.Background(), ledger.SetPositionInput{
		ProductID: "jamon", Location: "Tienda Centro", Quantity: 10,
	})
	require.NoError(t, err)
	_, err = f.uc.SetPosition(context.Background(), ledger.SetPositionInput{
		ProductID: "jamon", Location: "Production Facility", Quantity: 99,
	})
	require.NoError(t, err)

	centro, _ := f.positions.Get(context.Background(), "jamon", "Tienda Centro")
	require.NotNil(t, centro)
	assert.Equal(t, 10, centro.Quantity, "actualizar una ubicación no toca la otra")
}

func TestSetPosition_CantidadNegativaRechazada(t *testing.T) {
	f := newFixture()
	f.products.items["jamon"] = &entity.Product{ID: "jamon", Name: "Jamón"}

	_, err := f.uc.SetPosition(context.Background(), ledger.SetPositionInput{
		ProductID: "jamon", Location: "Tienda Centro", Quantity: -1,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetPosition_ProductoInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.uc.SetPosition(context.Background(), ledger.SetPositionInput{
		ProductID: "nada", Location: "Tienda Centro", Quantity: 1,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
