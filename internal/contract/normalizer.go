package contract

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// aliases maps title-cased labels to their canonical form. "Nda" covers the
// title-casing of the bare acronym.
var aliases = map[string]CanonicalType{
	"Employment Contract":      TypeEmploymentAgreement,
	"Non-Disclosure Agreement": TypeNDA,
	"Confidentiality Agreement": TypeNDA,
	"Service Contract":         TypeServiceAgreement,
	"Nda":                      TypeNDA,
}

// Normalize canonicalizes a raw contract-type label from the classifier.
// It is total: empty or absent input maps to TypeOther, and an unrecognized
// label stands as its own type (the compatibility matrix treats it as
// unsupported rather than erroring).
func Normalize(label string) CanonicalType {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return TypeOther
	}

	titled := cases.Title(language.English).String(trimmed)
	if canonical, ok := aliases[titled]; ok {
		return canonical
	}
	return CanonicalType(titled)
}
