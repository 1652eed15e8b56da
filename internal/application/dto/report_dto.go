package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReport resumen de operaciones de un día: ventas, producción y
// movimientos de stock. Es la base de los exports JSON, CSV, XML y PDF.
type DailyReport struct {
	Date              time.Time            `json:"date"`
	StoreID           string               `json:"storeId,omitempty"`
	TotalSales        int                  `json:"totalSales"`
	TotalRevenue      decimal.Decimal      `json:"totalRevenue"`
	TotalDiscounts    decimal.Decimal      `json:"totalDiscounts"`
	TotalTax          decimal.Decimal      `json:"totalTax"`
	PaymentBreakdown  map[string]decimal.Decimal `json:"paymentBreakdown"`
	ProductRows       []ReportProductRow         `json:"productRows"`
	Sales             []SaleResponse             `json:"sales"`
	ProductionBatches []ProductionResponse       `json:"productionBatches"`
	StockAdjustments  []AdjustmentResponse       `json:"stockAdjustments"`
}

// ReportProductRow unidades e ingresos de un producto en el día.
type ReportProductRow struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Units     int             `json:"units"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// DashboardSummary métricas para la pantalla principal.
type DashboardSummary struct {
	TotalProducts     int             `json:"totalProducts"`
	TotalIngredients  int             `json:"totalIngredients"`
	LowStockCount     int             `json:"lowStockCount"`
	SalesToday        int             `json:"salesToday"`
	RevenueToday      decimal.Decimal `json:"revenueToday"`
	PendingTransfers  int             `json:"pendingTransfers"`
	ActiveProductions int             `json:"activeProductions"`
}
