package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carnicos-api/internal/application/dto"
	"github.com/jhoicas/carnicos-api/internal/application/usecase"
	"github.com/jhoicas/carnicos-api/internal/infrastructure/report"
	"github.com/jhoicas/carnicos-api/pkg/logger"
)

// ReportHandler cierre diario exportable en json, csv, xml o pdf.
type ReportHandler struct {
	uc    *usecase.ReportUseCase
	csv   *report.CSVExporter
	xml   *report.XMLExporter
	pdf   *report.PDFExporter
	log   *logger.Logger
	debug bool
}

// NewReportHandler construye el handler con sus exportadores.
func NewReportHandler(uc *usecase.ReportUseCase, csv *report.CSVExporter, xml *report.XMLExporter, pdf *report.PDFExporter, log *logger.Logger, debug bool) *ReportHandler {
	return &ReportHandler{uc: uc, csv: csv, xml: xml, pdf: pdf, log: log, debug: debug}
}

// Daily godoc
// @Summary      Reporte de cierre diario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date      query  string  false  "Fecha (2006-01-02, por defecto hoy)"
// @Param        store_id  query  string  false  "Filtrar por tienda"
// @Param        format    query  string  false  "json | csv | xml | pdf"  default(json)
// @Success      200  {object}  dto.DailyReport
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	date := time.Now()
	if d, ok := parseDate(c.Query("date")); ok {
		date = d
	}

	rep, err := h.uc.Daily(c.Context(), date, c.Query("store_id"))
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}

	switch c.Query("format", "json") {
	case "json":
		return c.JSON(rep)
	case "csv":
		return h.sendFile(c, rep, h.csv.Export, "text/csv", "csv")
	case "xml":
		return h.sendFile(c, rep, h.xml.Export, "application/xml", "xml")
	case "pdf":
		return h.sendFile(c, rep, h.pdf.Export, "application/pdf", "pdf")
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NewValidationError(map[string][]string{
		"format": {"formato no soportado: use json, csv, xml o pdf"},
	}))
}

func (h *ReportHandler) sendFile(c *fiber.Ctx, rep *dto.DailyReport, export func(*dto.DailyReport) ([]byte, error), contentType, ext string) error {
	data, err := export(rep)
	if err != nil {
		return respondError(c, h.log, h.debug, err)
	}
	filename := fmt.Sprintf("cierre-%s.%s", rep.Date.Format("2006-01-02"), ext)
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
