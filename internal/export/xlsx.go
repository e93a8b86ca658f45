package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"contractiq/internal/assessment"
)

// WriteXLSX renders the risk assessment as an Excel workbook with a summary
// sheet, a key risks sheet, and a clause analysis sheet.
func WriteXLSX(w io.Writer, a *assessment.Assessment) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("renaming summary sheet: %w", err)
	}

	summaryRows := [][]interface{}{
		{"Contract Type", orUnknown(a.ContractType)},
		{"Overall Risk", orUnknown(a.OverallRiskScore)},
		{"Risk Score", int(a.NumericRiskScore)},
		{"Summary", a.Summary},
		{"Missing Clauses", strings.Join(a.MissingClauses, "; ")},
	}
	for i, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}

	const risksSheet = "Key Risks"
	if _, err := f.NewSheet(risksSheet); err != nil {
		return fmt.Errorf("creating risks sheet: %w", err)
	}
	if err := f.SetSheetRow(risksSheet, "A1", &[]interface{}{"Clause Excerpt", "Risk", "Severity"}); err != nil {
		return err
	}
	for i := range a.KeyRisks {
		r := &a.KeyRisks[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{r.Clause, r.Risk, r.Severity}
		if err := f.SetSheetRow(risksSheet, cell, &row); err != nil {
			return fmt.Errorf("writing risk row: %w", err)
		}
	}

	const clausesSheet = "Clause Analysis"
	if _, err := f.NewSheet(clausesSheet); err != nil {
		return fmt.Errorf("creating clauses sheet: %w", err)
	}
	header := []interface{}{"Clause", "Original Text", "Risk Level", "Explanation", "Recommendation"}
	if err := f.SetSheetRow(clausesSheet, "A1", &header); err != nil {
		return err
	}
	for i := range a.ClausesAnalysis {
		c := &a.ClausesAnalysis[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{c.Title, c.Text, c.RiskLevel, c.Explanation, c.Recommendation}
		if err := f.SetSheetRow(clausesSheet, cell, &row); err != nil {
			return fmt.Errorf("writing clause row: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
