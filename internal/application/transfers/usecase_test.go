package transfers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carnicos-api/internal/application/transfers"
	"github.com/jhoicas/carnicos-api/internal/domain"
	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTransferRepo struct {
	items map[string]*entity.Transfer
}

func (r *fakeTransferRepo) Create(_ context.Context, t *entity.Transfer) error {
	cp := *t
	r.items[t.ID] = &cp
	return nil
}

func (r *fakeTransferRepo) GetByID(_ context.Context, id string) (*entity.Transfer, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTransferRepo) GetForUpdate(ctx context.Context, id string) (*entity.Transfer, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeTransferRepo) List(_ context.Context) ([]*entity.Transfer, error) {
	out := make([]*entity.Transfer, 0, len(r.items))
	for _, t := range r.items {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTransferRepo) Update(_ context.Context, t *entity.Transfer) error {
	if _, ok := r.items[t.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *t
	r.items[t.ID] = &cp
	return nil
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

type fakePositionRepo struct {
	positions map[string]*entity.InventoryPosition
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
	transfers *fakeTransferRepo
	positions *fakePositionRepo
	history   *fakeHistoryRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(repos repository.TxRepos) error) error {
	return fn(repository.TxRepos{
		Transfers: tx.transfers,
		Positions: tx.positions,
		History:   tx.history,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Arranque común
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc        *transfers.UseCase
	transfers *fakeTransferRepo
	positions *fakePositionRepo
	history   *fakeHistoryRepo
}

func newFixture() *fixture {
	transferRepo := &fakeTransferRepo{items: map[string]*entity.Transfer{}}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Chorizo ahumado", SKU: "CHO-01"},
	}}
	positionRepo := &fakePositionRepo{positions: map[string]*entity.InventoryPosition{
		posKey("prod-1", "Bodega"): {ID: "pos-1", ProductID: "prod-1", Location: "Bodega", Quantity: 30},
	}}
	historyRepo := &fakeHistoryRepo{}
	runner := &fakeTxRunner{transfers: transferRepo, positions: positionRepo, history: historyRepo}

	return &fixture{
		uc:        transfers.NewUseCase(runner, transferRepo, productRepo, nil),
		transfers: transferRepo,
		positions: positionRepo,
		history:   historyRepo,
	}
}

func (f *fixture) createPending(t *testing.T, qty int) *entity.Transfer {
	t.Helper()
	tr, err := f.uc.Create(context.Background(), transfers.CreateInput{
		ProductID:    "prod-1",
		FromLocation: "Bodega",
		ToLocation:   "Tienda Centro",
		Quantity:     qty,
	})
	require.NoError(t, err)
	require.Equal(t, entity.TransferStatusPending, tr.Status)
	return tr
}

func intPtr(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NoTocaInventario(t *testing.T) {
	f := newFixture()
	f.createPending(t, 10)

	src := f.positions.positions[posKey("prod-1", "Bodega")]
	assert.Equal(t, 30, src.Quantity, "crear el traslado no mueve inventario")
	_, existe := f.positions.positions[posKey("prod-1", "Tienda Centro")]
	assert.False(t, existe)
}

func TestCreate_OrigenIgualDestinoRechazado(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Create(context.Background(), transfers.CreateInput{
		ProductID:    "prod-1",
		FromLocation: "Bodega",
		ToLocation:   "Bodega",
		Quantity:     5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_CompletarMueveInventario(t *testing.T) {
	f := newFixture()
	tr := f.createPending(t, 10)

	updated, err := f.uc.UpdateStatus(context.Background(), transfers.UpdateStatusInput{
		TransferID: tr.ID,
		Status:     entity.TransferStatusCompleted,
		ReceivedBy: "María",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TransferStatusCompleted, updated.Status)
	assert.NotNil(t, updated.ReceivedAt)

	src := f.positions.positions[posKey("prod-1", "Bodega")]
	dst := f.positions.positions[posKey("prod-1", "Tienda Centro")]
	assert.Equal(t, 20, src.Quantity)
	require.NotNil(t, dst)
	assert.Equal(t, 10, dst.Quantity, "el destino se crea con la cantidad movida")

	require.Len(t, f.history.rows, 1)
	assert.Equal(t, "transfer_status_changed", f.history.rows[0].Action)
}

func TestUpdateStatus_RecepcionParcialMueveLoRecibido(t *testing.T) {
	f := newFixture()
	tr := f.createPending(t, 10)

	updated, err := f.uc.UpdateStatus(context.Background(), transfers.UpdateStatusInput{
		TransferID:        tr.ID,
		Status:            entity.TransferStatusCompleted,
		QuantityReceived:  intPtr(7),
		DiscrepancyReason: "tres piezas dañadas en ruta",
	})
	require.NoError(t, err)

	require.NotNil(t, updated.QuantityReceived)
	assert.Equal(t, 7, *updated.QuantityReceived)
	assert.Equal(t, 23, f.positions.positions[posKey("prod-1", "Bodega")].Quantity)
	assert.Equal(t, 7, f.positions.positions[posKey("prod-1", "Tienda Centro")].Quantity)
}

func TestUpdateStatus_OrigenAcotadoEnCero(t *testing.T) {
	f := newFixture()
	tr := f.createPending(t, 50)

	_, err := f.uc.UpdateStatus(context.Background(), transfers.UpdateStatusInput{
		TransferID: tr.ID,
		Status:     entity.TransferStatusCompleted,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, f.positions.positions[posKey("prod-1", "Bodega")].Quantity)
	assert.Equal(t, 50, f.positions.positions[posKey("prod-1", "Tienda Centro")].Quantity)
}

func TestUpdateStatus_EstadoTerminalNoAdmiteCambios(t *testing.T) {
	f := newFixture()
	tr := f.createPending(t, 5)

	_, err := f.uc.UpdateStatus(context.Background(), transfers.UpdateStatusInput{
		TransferID: tr.ID,
		Status:     entity.TransferStatusCancelled,
	})
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(context.Background(), transfers.UpdateStatusInput{
		TransferID: tr.ID,
		Status:     entity.TransferStatusCompleted,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"un traslado cancelado no puede completarse después")
	assert.Equal(t, 30, f.positions.positions[posKey("prod-1", "Bodega")].Quantity)
}

func TestUpdateStatus_EstadoDesconocidoRechazado(t *testing.T) {
	f := newFixture()
	tr := f.createPending(t, 5)

	_, err := f.uc.UpdateStatus(context.Background(), transfers.UpdateStatusInput{
		TransferID: tr.ID,
		Status:     "teleported",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_TrasladoInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.uc.UpdateStatus(context.Background(), transfers.UpdateStatusInput{
		TransferID: "no-existe",
		Status:     entity.TransferStatusCompleted,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
