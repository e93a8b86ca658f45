package nlp

import "strings"

// minClauseLength filters out page numbers and similar noise.
const minClauseLength = 20

// SegmentClauses splits contract text into clause-sized chunks. Contracts
// vary wildly in numbering style, so splitting on blank lines is the safest
// heuristic for plain extracted text.
func SegmentClauses(text string) []string {
	chunks := strings.Split(text, "\n\n")
	var clauses []string
	for _, chunk := range chunks {
		clean := strings.TrimSpace(chunk)
		if len(clean) > minClauseLength {
			clauses = append(clauses, clean)
		}
	}
	return clauses
}

// Preprocessed bundles the heuristic preprocessing results for a contract.
type Preprocessed struct {
	Entities Entities `json:"entities"`
	Clauses  []string `json:"clauses"`
}

// Preprocess runs entity spotting and clause segmentation over raw text.
func Preprocess(text string) Preprocessed {
	return Preprocessed{
		Entities: ExtractEntities(text),
		Clauses:  SegmentClauses(text),
	}
}
