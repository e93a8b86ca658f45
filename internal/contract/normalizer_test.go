package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Aliases(t *testing.T) {
	tests := []struct {
		label string
		want  CanonicalType
	}{
		{"Employment Contract", TypeEmploymentAgreement},
		{"Non-Disclosure Agreement", TypeNDA},
		{"Confidentiality Agreement", TypeNDA},
		{"Service Contract", TypeServiceAgreement},
		{"NDA", TypeNDA},
		{"nda", TypeNDA},
		{"Service Agreement", TypeServiceAgreement},
		{"Employment Agreement", TypeEmploymentAgreement},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.label))
		})
	}
}

func TestNormalize_CaseAndWhitespace(t *testing.T) {
	assert.Equal(t, TypeEmploymentAgreement, Normalize("  employment contract  "))
	assert.Equal(t, TypeServiceAgreement, Normalize("SERVICE AGREEMENT"))
	assert.Equal(t, TypeNDA, Normalize("non-disclosure agreement"))
}

func TestNormalize_EmploymentContractEqualsAgreement(t *testing.T) {
	assert.Equal(t, Normalize("Employment Agreement"), Normalize("employment contract"))
}

func TestNormalize_UnrecognizedAndEmpty(t *testing.T) {
	assert.Equal(t, TypeOther, Normalize(""))
	assert.Equal(t, TypeOther, Normalize("   "))
	assert.Equal(t, TypeOther, Normalize("other"))

	// Unrecognized labels stand as their own (unsupported) type.
	assert.Equal(t, TypeLeaseAgreement, Normalize("lease agreement"))
	assert.Equal(t, CanonicalType("Franchise Agreement"), Normalize("franchise agreement"))
}
