package report

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
)

// XMLExporter serializa el reporte diario como XML (para el sistema contable
// externo que importa los cierres de día).
type XMLExporter struct{}

// NewXMLExporter construye el exportador.
func NewXMLExporter() *XMLExporter { return &XMLExporter{} }

// Export devuelve los bytes XML del reporte, con indentación de dos espacios.
func (e *XMLExporter) Export(report *dto.DailyReport) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("DailyReport")
	root.CreateAttr("date", report.Date.Format("2006-01-02"))
	if report.StoreID != "" {
		root.CreateAttr("storeId", report.StoreID)
	}

	totals := root.CreateElement("Totals")
	totals.CreateElement("Sales").SetText(fmt.Sprintf("%d", report.TotalSales))
	totals.CreateElement("Revenue").SetText(report.TotalRevenue.String())
	totals.CreateElement("Discounts").SetText(report.TotalDiscounts.String())
	totals.CreateElement("Tax").SetText(report.TotalTax.String())

	payments := root.CreateElement("Payments")
	for _, method := range sortedMethods(report.PaymentBreakdown) {
		p := payments.CreateElement("Payment")
		p.CreateAttr("method", method)
		p.SetText(report.PaymentBreakdown[method].String())
	}

	productsEl := root.CreateElement("Products")
	for _, row := range report.ProductRows {
		prod := productsEl.CreateElement("Product")
		prod.CreateAttr("id", row.ProductID)
		prod.CreateAttr("name", row.Name)
		prod.CreateElement("Units").SetText(fmt.Sprintf("%d", row.Units))
		prod.CreateElement("Revenue").SetText(row.Revenue.String())
	}

	salesEl := root.CreateElement("Sales")
	for _, s := range report.Sales {
		sale := salesEl.CreateElement("Sale")
		sale.CreateAttr("transactionId", s.TransactionID)
		sale.CreateAttr("storeId", s.StoreID)
		sale.CreateAttr("type", s.SalesType)
		sale.CreateElement("Subtotal").SetText(s.Subtotal.String())
		sale.CreateElement("Discount").SetText(s.GlobalDiscount.String())
		sale.CreateElement("Tax").SetText(s.Tax.String())
		sale.CreateElement("Total").SetText(s.Total.String())
		sale.CreateElement("CreatedAt").SetText(s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
	}

	prodEl := root.CreateElement("Production")
	for _, p := range report.ProductionBatches {
		batch := prodEl.CreateElement("Batch")
		batch.CreateAttr("number", p.BatchNumber)
		batch.CreateAttr("status", p.Status)
		batch.CreateElement("ProductID").SetText(p.ProductID)
		batch.CreateElement("Quantity").SetText(p.Quantity.String())
	}

	adjEl := root.CreateElement("StockAdjustments")
	for _, a := range report.StockAdjustments {
		adj := adjEl.CreateElement("Adjustment")
		adj.CreateAttr("type", a.Type)
		adj.CreateElement("Ingredient").SetText(a.IngredientName)
		adj.CreateElement("Code").SetText(a.IngredientCode)
		adj.CreateElement("Quantity").SetText(a.Quantity.String())
		adj.CreateElement("PreviousStock").SetText(a.PreviousStock.String())
		adj.CreateElement("NewStock").SetText(a.NewStock.String())
		adj.CreateElement("User").SetText(a.UserName)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: escribir reporte: %w", err)
	}
	return out, nil
}
