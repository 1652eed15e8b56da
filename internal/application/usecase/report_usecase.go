package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
)

// ReportUseCase arma el reporte diario de operaciones: ventas, lotes de
// producción y ajustes de stock del día. Los exports (CSV, XML, PDF) se
// generan a partir de este mismo DailyReport.
type ReportUseCase struct {
	saleRepo       repository.SaleRepository
	productionRepo repository.ProductionRepository
	adjustmentRepo repository.StockAdjustmentRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	saleRepo repository.SaleRepository,
	productionRepo repository.ProductionRepository,
	adjustmentRepo repository.StockAdjustmentRepository,
) *ReportUseCase {
	return &ReportUseCase{
		saleRepo:       saleRepo,
		productionRepo: productionRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

// Daily arma el reporte del día natural de date. storeID vacío incluye todas
// las tiendas.
func (uc *ReportUseCase) Daily(ctx context.Context, date time.Time, storeID string) (*dto.DailyReport, error) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	to := from.Add(24 * time.Hour)

	report := &dto.DailyReport{
		Date:             from,
		StoreID:          storeID,
		TotalRevenue:     decimal.Zero,
		TotalDiscounts:   decimal.Zero,
		TotalTax:         decimal.Zero,
		PaymentBreakdown: map[string]decimal.Decimal{},
	}

	sales, err := uc.saleRepo.List(ctx, &from, &to)
	if err != nil {
		return nil, err
	}
	productRows := map[string]*dto.ReportProductRow{}
	var productOrder []string
	for _, s := range sales {
		if storeID != "" && s.StoreID != storeID {
			continue
		}
		report.Sales = append(report.Sales, dto.ToSaleResponse(s))
		report.TotalSales++
		report.TotalRevenue = report.TotalRevenue.Add(s.Total)
		report.TotalDiscounts = report.TotalDiscounts.Add(s.GlobalDiscount)
		report.TotalTax = report.TotalTax.Add(s.Tax)

		method := s.PaymentMethod
		if method == "" {
			method = "other"
		}
		prev, ok := report.PaymentBreakdown[method]
		if !ok {
			prev = decimal.Zero
		}
		report.PaymentBreakdown[method] = prev.Add(s.Total)

		items, err := s.ParseItems()
		if err != nil {
			continue
		}
		for _, item := range items {
			row, ok := productRows[item.ProductID]
			if !ok {
				row = &dto.ReportProductRow{ProductID: item.ProductID, Name: item.Name, Revenue: decimal.Zero}
				productRows[item.ProductID] = row
				productOrder = append(productOrder, item.ProductID)
			}
			row.Units += item.Quantity
			row.Revenue = row.Revenue.Add(item.Subtotal)
		}
	}
	for _, id := range productOrder {
		report.ProductRows = append(report.ProductRows, *productRows[id])
	}

	productions, err := uc.productionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range productions {
		if p.CreatedAt.Before(from) || !p.CreatedAt.Before(to) {
			continue
		}
		report.ProductionBatches = append(report.ProductionBatches, dto.ToProductionResponse(p))
	}

	adjustments, _, err := uc.adjustmentRepo.List(ctx, repository.AdjustmentFilter{
		From:  &from,
		To:    &to,
		Limit: 100,
	})
	if err != nil {
		return nil, err
	}
	report.StockAdjustments = dto.ToAdjustmentResponses(adjustments)

	return report, nil
}
