package infra

// pdf.go — printable one-page daily report summary using go-pdf/fpdf.
// Managers download these for the physical end-of-day folder, so layout
// mirrors the paper form: header, monetary table, breakdown counts, footer.

import (
	"bytes"
	"fmt"

	"github.com/maesedev/dealership-project/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// RenderReportPDF renders a DailyReport to an in-memory PDF.
func RenderReportPDF(report *model.DailyReport, appName string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, appName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 6, "Reporte diario", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, report.Date.Format("02/01/2006"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(3)

	// ── Monetary summary ─────────────────────────────────────────────────────
	col1 := contentW * 0.55
	col2 := contentW * 0.45

	row := func(label string, v decimal.Decimal, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		pdf.CellFormat(col1, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, "$"+v.StringFixed(2), "", 1, "R", false, 0, "")
	}

	row("Reik", report.Reik, false)
	row("Jackpot", report.Jackpot, false)
	row("Ganancias", report.Ganancias, false)
	row("Gastos", report.Gastos, false)
	pdf.Ln(1)
	row("Ganancia neta", report.NetProfit(), true)
	row("Ingreso total", report.TotalIncome(), true)
	row("Margen (%)", report.ProfitMargin(), false)
	pdf.Ln(3)

	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(3)

	// ── Breakdown ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Sesiones del dia: %d", len(report.SessionIDs)), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Jackpots pagados: %d", len(report.JackpotWins)), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Bonos otorgados: %d", len(report.Bonos)), "", 1, "L", false, 0, "")

	if report.Comment != nil && *report.Comment != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.MultiCell(contentW, 4, *report.Comment, "", "L", false)
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, "Generado "+report.UpdatedAt.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}
