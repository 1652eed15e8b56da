package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/cache"
	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

const (
	dashboardCacheKey = "dashboard:summary"
	dashboardCacheTTL = 30 * time.Second
)

// DashboardUseCase métricas agregadas para la pantalla principal, con cache
// corto para no recalcular en cada refresco del frontend.
type DashboardUseCase struct {
	productRepo    repository.ProductRepository
	ingredientRepo repository.IngredientRepository
	saleRepo       repository.SaleRepository
	transferRepo   repository.TransferRepository
	productionRepo repository.ProductionRepository
	cache          cache.Cache
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	ingredientRepo repository.IngredientRepository,
	saleRepo repository.SaleRepository,
	transferRepo repository.TransferRepository,
	productionRepo repository.ProductionRepository,
	c cache.Cache,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:    productRepo,
		ingredientRepo: ingredientRepo,
		saleRepo:       saleRepo,
		transferRepo:   transferRepo,
		productionRepo: productionRepo,
		cache:          c,
	}
}

// Summary calcula (o sirve del cache) las métricas del día.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummary, error) {
	if blob, ok, err := uc.cache.Get(ctx, dashboardCacheKey); err == nil && ok {
		var cached dto.DashboardSummary
		if json.Unmarshal(blob, &cached) == nil {
			return &cached, nil
		}
	}

	summary := &dto.DashboardSummary{RevenueToday: decimal.Zero}

	products, err := uc.productRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	summary.TotalProducts = len(products)

	ingredients, err := uc.ingredientRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	summary.TotalIngredients = len(ingredients)
	for _, ing := range ingredients {
		if ing.Stock.LessThanOrEqual(ing.MinStockLevel) {
			summary.LowStockCount++
		}
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)
	sales, err := uc.saleRepo.List(ctx, &startOfDay, nil)
	if err != nil {
		return nil, err
	}
	summary.SalesToday = len(sales)
	for _, s := range sales {
		summary.RevenueToday = summary.RevenueToday.Add(s.Total)
	}

	transfersList, err := uc.transferRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range transfersList {
		if t.Status == entity.TransferStatusPending || t.Status == entity.TransferStatusInTransit {
			summary.PendingTransfers++
		}
	}

	productions, err := uc.productionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range productions {
		if p.Status != entity.ProductionStatusCompleted {
			summary.ActiveProductions++
		}
	}

	if blob, err := json.Marshal(summary); err == nil {
		_ = uc.cache.Set(ctx, dashboardCacheKey, blob, dashboardCacheTTL)
	}
	return summary, nil
}
