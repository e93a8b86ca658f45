// Package assessment defines the structured risk-assessment schema produced
// by the LLM analyzer and consumed by the risk refinement and export layers.
package assessment

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Score is a 0-100 numeric risk score. LLMs occasionally return it as a
// string ("75" or "75/100"), so unmarshaling tolerates both forms; a value
// with no parseable digits defaults to 50 (medium risk).
type Score int

func (s *Score) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(string(data), `"`)
	var digits strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			continue
		}
		// Stop at the first non-digit after seeing digits ("75/100" -> 75).
		if digits.Len() > 0 {
			break
		}
	}
	if digits.Len() == 0 {
		*s = 50
		return nil
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		*s = 50
		return nil
	}
	*s = Score(n)
	return nil
}

// KeyRisk is one unfavorable term flagged by the analyzer.
type KeyRisk struct {
	Clause   string `json:"clause"`
	Risk     string `json:"risk"`
	Severity string `json:"severity"`
}

// AmbiguousClause is a clause flagged as vague or open to interpretation.
type AmbiguousClause struct {
	Clause string `json:"clause"`
	Reason string `json:"reason"`
}

// ClauseAnalysis is the plain-language review of one key clause.
type ClauseAnalysis struct {
	Title          string `json:"title"`
	Text           string `json:"text"`
	Explanation    string `json:"explanation"`
	RiskLevel      string `json:"risk_level"`
	Recommendation string `json:"recommendation"`
}

// Assessment is the full analyzer output for one contract.
type Assessment struct {
	ContractType     string            `json:"contract_type"`
	Summary          string            `json:"summary"`
	OverallRiskScore string            `json:"overall_risk_score"`
	NumericRiskScore Score             `json:"numeric_risk_score"`
	KeyRisks         []KeyRisk         `json:"key_risks"`
	AmbiguousClauses []AmbiguousClause `json:"ambiguous_clauses"`
	ClausesAnalysis  []ClauseAnalysis  `json:"clauses_analysis"`
	MissingClauses   []string          `json:"missing_clauses"`
}

// Decode unmarshals a raw analyzer result into an Assessment.
func Decode(raw json.RawMessage) (*Assessment, error) {
	var a Assessment
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
