package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/cache"
	"github.com/jhoicas/carnicos-api/internal/domain"
	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

const (
	discountCacheKey = "discount:settings"
	discountCacheTTL = 5 * time.Minute
)

// DiscountUseCase configuración del descuento mayorista (fila única),
// cacheada porque se consulta en cada venta.
type DiscountUseCase struct {
	repo  repository.DiscountSettingRepository
	cache cache.Cache
}

// NewDiscountUseCase construye el caso de uso.
func NewDiscountUseCase(repo repository.DiscountSettingRepository, c cache.Cache) *DiscountUseCase {
	return &DiscountUseCase{repo: repo, cache: c}
}

// Get devuelve la configuración vigente, del cache si hay hit. Si la fila no
// existe todavía el repositorio crea los valores por defecto.
func (uc *DiscountUseCase) Get(ctx context.Context) (*dto.DiscountSettingResponse, error) {
	if blob, ok, err := uc.cache.Get(ctx, discountCacheKey); err == nil && ok {
		var cached dto.DiscountSettingResponse
		if json.Unmarshal(blob, &cached) == nil {
			return &cached, nil
		}
	}

	setting, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	resp := dto.ToDiscountSettingResponse(setting)
	if blob, err := json.Marshal(resp); err == nil {
		_ = uc.cache.Set(ctx, discountCacheKey, blob, discountCacheTTL)
	}
	return &resp, nil
}

// Update guarda la configuración e invalida el cache.
func (uc *DiscountUseCase) Update(ctx context.Context, in dto.UpdateDiscountSettingRequest) (*dto.DiscountSettingResponse, error) {
	if in.DiscountType != entity.DiscountTypePercentage && in.DiscountType != entity.DiscountTypeFixedAmount {
		return nil, domain.ErrInvalidInput
	}
	if in.WholesaleMinUnits < 1 || in.WholesaleMinUnits > 1000 {
		return nil, domain.ErrInvalidInput
	}
	if in.WholesaleDiscountPercent.IsNegative() || in.WholesaleDiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}
	if in.WholesaleDiscountAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	setting, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	setting.WholesaleMinUnits = in.WholesaleMinUnits
	setting.DiscountType = in.DiscountType
	setting.WholesaleDiscountPercent = in.WholesaleDiscountPercent
	setting.WholesaleDiscountAmount = in.WholesaleDiscountAmount
	setting.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, setting); err != nil {
		return nil, err
	}
	_ = uc.cache.Delete(ctx, discountCacheKey)
	resp := dto.ToDiscountSettingResponse(setting)
	return &resp, nil
}
