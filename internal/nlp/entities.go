// Package nlp provides lightweight heuristic preprocessing of contract text:
// entity spotting (parties, dates, money) and clause segmentation. The
// results are advisory context for the LLM analyzer, not a substitute for it.
package nlp

import (
	"regexp"
	"strings"
)

// Entities holds the spotted entity mentions, de-duplicated, in order of
// first appearance.
type Entities struct {
	Parties []string `json:"parties"`
	Dates   []string `json:"dates"`
	Money   []string `json:"money"`
}

var (
	// Organization names: capitalized word runs ending in a company suffix.
	partyPattern = regexp.MustCompile(`\b(?:[A-Z][A-Za-z&.'-]+\s+)+(?:Private\s+Limited|Pvt\.?\s*Ltd\.?|Limited|Ltd\.?|LLP|LLC|Inc\.?|Corp\.?|Corporation|Company|Co\.?)\b`)

	// Dates: "1 January 2024", "January 1, 2024", "01/01/2024", "2024-01-01".
	datePattern = regexp.MustCompile(`\b(?:\d{1,2}(?:st|nd|rd|th)?\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)[,]?\s+\d{4}|(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}|\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}-\d{2}-\d{2})\b`)

	// Money: rupee/dollar symbols, Rs./INR/USD prefixes, amounts with
	// separators, optional lakh/crore units.
	moneyPattern = regexp.MustCompile(`(?:₹|\$|Rs\.?\s?|INR\s?|USD\s?)\s?\d[\d,]*(?:\.\d+)?(?:\s?(?:lakhs?|crores?|million|thousand))?`)
)

// ExtractEntities spots party, date, and money mentions in the text.
func ExtractEntities(text string) Entities {
	seen := make(map[string]bool)
	collect := func(matches []string) []string {
		var out []string
		for _, m := range matches {
			clean := strings.TrimSpace(m)
			if clean == "" || seen[clean] {
				continue
			}
			seen[clean] = true
			out = append(out, clean)
		}
		return out
	}

	return Entities{
		Parties: collect(partyPattern.FindAllString(text, -1)),
		Dates:   collect(datePattern.FindAllString(text, -1)),
		Money:   collect(moneyPattern.FindAllString(text, -1)),
	}
}
