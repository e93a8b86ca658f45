package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"contractiq/internal/assessment"
)

const (
	pdfLineHeight = 5.0

	conceptColWidth = 45.0
	riskColWidth    = 25.0
	reviewColWidth  = 120.0
)

// WritePDF renders the risk assessment report as a PDF document.
func WritePDF(w io.Writer, a *assessment.Assessment) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Contract Risk Assessment Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Summary section
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(35, 6, "Contract Type:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, orUnknown(a.ContractType), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(42, 6, "Overall Risk Score:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("%d/100 (%s)", int(a.NumericRiskScore), orUnknown(a.OverallRiskScore)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	sectionHeading(pdf, "Executive Summary")
	pdf.SetFont("Helvetica", "", 11)
	summary := a.Summary
	if summary == "" {
		summary = "No summary available."
	}
	pdf.MultiCell(0, pdfLineHeight, summary, "", "L", false)
	pdf.Ln(4)

	// Key risks
	sectionHeading(pdf, "Key Risks Identified")
	if len(a.KeyRisks) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, pdfLineHeight, "No major risks identified.", "", "L", false)
	} else {
		for i := range a.KeyRisks {
			r := &a.KeyRisks[i]
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, pdfLineHeight, fmt.Sprintf("- %s (Severity: %s)", r.Risk, r.Severity), "", "L", false)
			if r.Clause != "" {
				pdf.SetFont("Helvetica", "I", 10)
				pdf.MultiCell(0, pdfLineHeight, r.Clause, "", "L", false)
			}
			pdf.Ln(2)
		}
	}
	pdf.Ln(4)

	// Clause analysis table
	sectionHeading(pdf, "Detailed Clause Analysis")
	writeClauseTable(pdf, a.ClausesAnalysis)

	return pdf.Output(w)
}

func sectionHeading(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func writeClauseTable(pdf *fpdf.Fpdf, clauses []assessment.ClauseAnalysis) {
	// Header row
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	pdf.CellFormat(conceptColWidth, 7, "Clause Concept", "1", 0, "L", true, 0, "")
	pdf.CellFormat(riskColWidth, 7, "Risk", "1", 0, "L", true, 0, "")
	pdf.CellFormat(reviewColWidth, 7, "Review", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(245, 245, 220)

	for i := range clauses {
		c := &clauses[i]
		writeClauseRow(pdf, c.Title, c.RiskLevel, c.Explanation)
	}
}

// writeClauseRow draws a three-column row with the height of its tallest cell.
func writeClauseRow(pdf *fpdf.Fpdf, concept, risk, review string) {
	conceptLines := pdf.SplitText(concept, conceptColWidth-2)
	riskLines := pdf.SplitText(risk, riskColWidth-2)
	reviewLines := pdf.SplitText(review, reviewColWidth-2)

	lines := len(conceptLines)
	if len(riskLines) > lines {
		lines = len(riskLines)
	}
	if len(reviewLines) > lines {
		lines = len(reviewLines)
	}
	if lines == 0 {
		lines = 1
	}
	rowHeight := float64(lines) * pdfLineHeight

	// Start a new page if the row would overflow
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	if pdf.GetY()+rowHeight > pageHeight-bottom {
		pdf.AddPage()
	}

	x, y := pdf.GetXY()
	drawCell(pdf, x, y, conceptColWidth, rowHeight, conceptLines)
	drawCell(pdf, x+conceptColWidth, y, riskColWidth, rowHeight, riskLines)
	drawCell(pdf, x+conceptColWidth+riskColWidth, y, reviewColWidth, rowHeight, reviewLines)
	pdf.SetXY(x, y+rowHeight)
}

func drawCell(pdf *fpdf.Fpdf, x, y, width, height float64, lines []string) {
	pdf.Rect(x, y, width, height, "FD")
	pdf.SetXY(x+1, y)
	for _, line := range lines {
		pdf.CellFormat(width-2, pdfLineHeight, line, "", 2, "L", false, 0, "")
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
