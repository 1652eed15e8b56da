package report

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 140, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PDFExporter genera la versión imprimible del cierre diario usando Maroto v2.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────────────┐
//	│  HEADER: nombre del negocio + fecha del reporte      │
//	│  TOTALES: ventas / ingresos / descuentos / impuestos │
//	│  TABLA VENTAS: transacción | tienda | tipo | total   │
//	│  TABLA AJUSTES: ingrediente | tipo | antes | después │
//	└──────────────────────────────────────────────────────┘
type PDFExporter struct {
	businessName string
}

// NewPDFExporter construye el exportador.
func NewPDFExporter(businessName string) *PDFExporter {
	return &PDFExporter{businessName: businessName}
}

// Export genera el PDF y devuelve sus bytes.
func (e *PDFExporter) Export(report *dto.DailyReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cierre diario "+report.Date.Format("2006-01-02"), true).
		WithAuthor(e.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(e.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("Ventas"))
	m.AddRows(salesHeaderRow())
	for _, r := range salesRows(report) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("Ajustes de stock"))
	m.AddRows(adjustmentsHeaderRow())
	for _, r := range adjustmentRows(report) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func (e *PDFExporter) headerRow(report *dto.DailyReport) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(e.businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Cierre diario de operaciones", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(report.Date.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 4,
			}),
		),
	)
}

func totalsRow(report *dto.DailyReport) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	return row.New(12).Add(
		cell("Ventas", fmt.Sprintf("%d", report.TotalSales)),
		cell("Ingresos", "$ "+report.TotalRevenue.StringFixed(2)),
		cell("Descuentos", "$ "+report.TotalDiscounts.StringFixed(2)),
		cell("Impuestos", "$ "+report.TotalTax.StringFixed(2)),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
		),
	)
}

func salesHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}
	return row.New(6).Add(
		col.New(4).Add(text.New("Transacción", header)),
		col.New(3).Add(text.New("Tienda", header)),
		col.New(2).Add(text.New("Tipo", header)),
		col.New(3).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Align: align.Right})),
	)
}

func salesRows(report *dto.DailyReport) []core.Row {
	rows := make([]core.Row, 0, len(report.Sales))
	for _, s := range report.Sales {
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(s.TransactionID, props.Text{Size: 8})),
			col.New(3).Add(text.New(s.StoreID, props.Text{Size: 8})),
			col.New(2).Add(text.New(s.SalesType, props.Text{Size: 8})),
			col.New(3).Add(text.New("$ "+s.Total.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}

func adjustmentsHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}
	return row.New(6).Add(
		col.New(4).Add(text.New("Ingrediente", header)),
		col.New(2).Add(text.New("Tipo", header)),
		col.New(2).Add(text.New("Cantidad", header)),
		col.New(2).Add(text.New("Antes", header)),
		col.New(2).Add(text.New("Después", header)),
	)
}

func adjustmentRows(report *dto.DailyReport) []core.Row {
	rows := make([]core.Row, 0, len(report.StockAdjustments))
	for _, a := range report.StockAdjustments {
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(a.IngredientName, props.Text{Size: 8})),
			col.New(2).Add(text.New(a.Type, props.Text{Size: 8})),
			col.New(2).Add(text.New(a.Quantity.String(), props.Text{Size: 8})),
			col.New(2).Add(text.New(a.PreviousStock.String(), props.Text{Size: 8})),
			col.New(2).Add(text.New(a.NewStock.String(), props.Text{Size: 8})),
		))
	}
	return rows
}
