// Package report genera los exports del reporte diario: CSV, XML y PDF.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
)

// orden estable para los medios de pago en los exports
func sortedMethods(breakdown map[string]decimal.Decimal) []string {
	methods := make([]string, 0, len(breakdown))
	for m := range breakdown {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}

// CSVExporter serializa el reporte diario como CSV (una sección por bloque:
// ventas, producción y ajustes, separadas por una fila en blanco).
type CSVExporter struct{}

// NewCSVExporter construye el exportador.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// Export devuelve los bytes CSV del reporte.
func (e *CSVExporter) Export(report *dto.DailyReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"reporte_diario", report.Date.Format("2006-01-02")},
		{"total_ventas", fmt.Sprintf("%d", report.TotalSales)},
		{"ingresos", report.TotalRevenue.String()},
		{"descuentos", report.TotalDiscounts.String()},
		{"impuestos", report.TotalTax.String()},
		{},
		{"ventas"},
		{"transaction_id", "tienda", "subtotal", "descuento", "impuesto", "total", "tipo", "hora"},
	}
	for _, s := range report.Sales {
		records = append(records, []string{
			s.TransactionID, s.StoreID, s.Subtotal.String(), s.GlobalDiscount.String(),
			s.Tax.String(), s.Total.String(), s.SalesType, s.CreatedAt.Format("15:04:05"),
		})
	}

	records = append(records, []string{}, []string{"pagos"}, []string{"medio", "total"})
	for _, method := range sortedMethods(report.PaymentBreakdown) {
		records = append(records, []string{method, report.PaymentBreakdown[method].String()})
	}

	records = append(records, []string{}, []string{"productos"},
		[]string{"product_id", "nombre", "unidades", "ingresos"})
	for _, row := range report.ProductRows {
		records = append(records, []string{
			row.ProductID, row.Name, fmt.Sprintf("%d", row.Units), row.Revenue.String(),
		})
	}

	records = append(records, []string{}, []string{"produccion"},
		[]string{"batch_number", "product_id", "cantidad", "estado", "operador"})
	for _, p := range report.ProductionBatches {
		records = append(records, []string{
			p.BatchNumber, p.ProductID, p.Quantity.String(), p.Status, p.Operator,
		})
	}

	records = append(records, []string{}, []string{"ajustes_de_stock"},
		[]string{"ingrediente", "codigo", "tipo", "cantidad", "stock_anterior", "stock_nuevo", "usuario", "hora"})
	for _, a := range report.StockAdjustments {
		records = append(records, []string{
			a.IngredientName, a.IngredientCode, a.Type, a.Quantity.String(),
			a.PreviousStock.String(), a.NewStock.String(), a.UserName, a.CreatedAt.Format("15:04:05"),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("csv: escribir reporte: %w", err)
	}
	return buf.Bytes(), nil
}
