// Package risk refines raw LLM assessments with local rule-based heuristics.
// Risk scoring semantics stay with the model; this layer only validates the
// score range and supplements findings the model commonly misses.
package risk

import (
	"strings"

	"contractiq/internal/assessment"
	"contractiq/internal/domain"
)

// ClampScore forces a numeric risk score into the documented 0-100 range.
func ClampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// LevelFromString maps the model's coarse grade to a RiskLevel, defaulting to
// Medium for anything unrecognized.
func LevelFromString(s string) domain.RiskLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return domain.RiskLow
	case "high":
		return domain.RiskHigh
	default:
		return domain.RiskMedium
	}
}

// heuristicAlerts runs rule-based checks over the raw contract text to
// supplement the model's missing-clause list.
func heuristicAlerts(text string) []string {
	var alerts []string
	if !strings.Contains(text, "Arbitration") && !strings.Contains(text, "Dispute Resolution") {
		alerts = append(alerts, "Missing Dispute Resolution/Arbitration clause.")
	}
	return alerts
}

// Refine validates the assessment score and merges heuristic alerts into the
// missing-clause list. The assessment is modified in place.
func Refine(a *assessment.Assessment, rawText string) {
	a.NumericRiskScore = assessment.Score(ClampScore(int(a.NumericRiskScore)))

	for _, alert := range heuristicAlerts(rawText) {
		if !containsString(a.MissingClauses, alert) {
			a.MissingClauses = append(a.MissingClauses, alert)
		}
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
