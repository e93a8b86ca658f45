package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"contractiq/internal/assessment"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// clauseColumns defines the CSV header row for the clause analysis export.
var clauseColumns = []string{
	"Clause",
	"Original Text",
	"Risk Level",
	"Plain Language Explanation",
	"Recommendation",
}

// CSVWriter wraps csv.Writer for exporting clause analyses as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes CSV to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the clause analysis header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(clauseColumns)
}

// WriteAssessment writes one row per analyzed clause, followed by one row
// per key risk under a separate section header.
func (w *CSVWriter) WriteAssessment(a *assessment.Assessment) error {
	for i := range a.ClausesAnalysis {
		c := &a.ClausesAnalysis[i]
		row := []string{c.Title, c.Text, c.RiskLevel, c.Explanation, c.Recommendation}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}

	if len(a.KeyRisks) == 0 {
		return nil
	}
	if err := w.csv.Write([]string{"Key Risk", "Clause Excerpt", "Severity", "Explanation", ""}); err != nil {
		return err
	}
	for i := range a.KeyRisks {
		r := &a.KeyRisks[i]
		row := []string{"Key Risk " + strconv.Itoa(i+1), r.Clause, r.Severity, r.Risk, ""}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

// WriteCSV writes a complete clause analysis CSV (BOM, header, rows) to w.
func WriteCSV(w io.Writer, a *assessment.Assessment) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := NewCSVWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WriteAssessment(a); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
