package report_test

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/infrastructure/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de ejemplo
// ──────────────────────────────────────────────────────────────────────────────

func sampleReport() *dto.DailyReport {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	return &dto.DailyReport{
		Date:           day,
		StoreID:        "store-1",
		TotalSales:     2,
		TotalRevenue:   decimal.NewFromFloat(153.50),
		TotalDiscounts: decimal.NewFromFloat(3.50),
		TotalTax:       decimal.NewFromInt(12),
		PaymentBreakdown: map[string]decimal.Decimal{
			"cash": decimal.NewFromInt(108),
			"card": decimal.NewFromFloat(45.50),
		},
		ProductRows: []dto.ReportProductRow{
			{ProductID: "prod-1", Name: "Chorizo ahumado", Units: 12, Revenue: decimal.NewFromInt(120)},
		},
		Sales: []dto.SaleResponse{
			{
				TransactionID: "TX-001",
				StoreID:       "store-1",
				Subtotal:      decimal.NewFromInt(100),
				Tax:           decimal.NewFromInt(8),
				Total:         decimal.NewFromInt(108),
				SalesType:     "retail",
				CreatedAt:     day.Add(10 * time.Hour),
			},
			{
				TransactionID:  "TX-002",
				StoreID:        "store-1",
				Subtotal:       decimal.NewFromInt(49),
				GlobalDiscount: decimal.NewFromFloat(3.50),
				Tax:            decimal.NewFromInt(4),
				Total:          decimal.NewFromFloat(49.50),
				SalesType:      "wholesale",
				CreatedAt:      day.Add(16 * time.Hour),
			},
		},
		ProductionBatches: []dto.ProductionResponse{
			{BatchNumber: "L-77", ProductID: "prod-1", Quantity: decimal.NewFromInt(40), Status: "completed"},
		},
		StockAdjustments: []dto.AdjustmentResponse{
			{
				IngredientName: "Jamón Serrano",
				IngredientCode: "JAM-01",
				Type:           "remove",
				Quantity:       decimal.NewFromFloat(2.5),
				PreviousStock:  decimal.NewFromInt(10),
				NewStock:       decimal.NewFromFloat(7.5),
				UserName:       "System",
				CreatedAt:      day.Add(9 * time.Hour),
			},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CSV
// ──────────────────────────────────────────────────────────────────────────────

func TestCSVExport_SeccionesYTotales(t *testing.T) {
	data, err := report.NewCSVExporter().Export(sampleReport())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "reporte_diario,2025-03-14")
	assert.Contains(t, out, "total_ventas,2")
	assert.Contains(t, out, "ventas")
	assert.Contains(t, out, "pagos")
	assert.Contains(t, out, "cash,108")
	assert.Contains(t, out, "productos")
	assert.Contains(t, out, "Chorizo ahumado,12,120")
	assert.Contains(t, out, "produccion")
	assert.Contains(t, out, "ajustes_de_stock")
	assert.Contains(t, out, "TX-001")
	assert.Contains(t, out, "L-77")
	assert.Contains(t, out, "Jamón Serrano")

	// Cada fila de datos debe ser CSV parseable.
	r := csv.NewReader(strings.NewReader(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	assert.Greater(t, len(records), 8)
}

// ──────────────────────────────────────────────────────────────────────────────
// XML
// ──────────────────────────────────────────────────────────────────────────────

func TestXMLExport_EstructuraDelDocumento(t *testing.T) {
	data, err := report.NewXMLExporter().Export(sampleReport())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))

	root := doc.SelectElement("DailyReport")
	require.NotNil(t, root)
	assert.Equal(t, "2025-03-14", root.SelectAttrValue("date", ""))
	assert.Equal(t, "store-1", root.SelectAttrValue("storeId", ""))

	totals := root.SelectElement("Totals")
	require.NotNil(t, totals)
	assert.Equal(t, "2", totals.SelectElement("Sales").Text())
	assert.Equal(t, "153.5", totals.SelectElement("Revenue").Text())

	payments := root.SelectElement("Payments").SelectElements("Payment")
	require.Len(t, payments, 2)
	assert.Equal(t, "card", payments[0].SelectAttrValue("method", ""), "medios de pago en orden alfabético")
	assert.Equal(t, "45.5", payments[0].Text())

	products := root.SelectElement("Products").SelectElements("Product")
	require.Len(t, products, 1)
	assert.Equal(t, "Chorizo ahumado", products[0].SelectAttrValue("name", ""))
	assert.Equal(t, "12", products[0].SelectElement("Units").Text())

	sales := root.SelectElement("Sales").SelectElements("Sale")
	require.Len(t, sales, 2)
	assert.Equal(t, "TX-001", sales[0].SelectAttrValue("transactionId", ""))

	adjs := root.SelectElement("StockAdjustments").SelectElements("Adjustment")
	require.Len(t, adjs, 1)
	assert.Equal(t, "remove", adjs[0].SelectAttrValue("type", ""))
	assert.Equal(t, "Jamón Serrano", adjs[0].SelectElement("Ingredient").Text())
	assert.Equal(t, "10", adjs[0].SelectElement("PreviousStock").Text())
	assert.Equal(t, "7.5", adjs[0].SelectElement("NewStock").Text())
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestPDFExport_GeneraDocumento(t *testing.T) {
	data, err := report.NewPDFExporter("Cárnicos Don Pedro").Export(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]), "el archivo debe empezar con la firma PDF")
}
