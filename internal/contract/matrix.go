package contract

// Matrix is the static contract-type to template compatibility relation.
// Built once at startup and immutable afterwards; lookups never error.
type Matrix struct {
	edges map[CanonicalType][]TemplateName
}

// NewMatrix builds the compatibility matrix. Edges are keyed by canonical
// constants so the alias table and the matrix cannot drift apart: aliases
// resolve in Normalize before any lookup happens here.
func NewMatrix() *Matrix {
	return &Matrix{
		edges: map[CanonicalType][]TemplateName{
			TypeServiceAgreement:    {TemplateServiceAgreement},
			TypeEmploymentAgreement: {TemplateEmploymentAgreement},
			TypeNDA:                 {TemplateNDA},

			TypeLeaseAgreement:       {},
			TypeRentalAgreement:      {},
			TypePartnershipAgreement: {},
			TypeVendorAgreement:      {},
			TypePurchaseAgreement:    {},
			TypeOther:                {},
		},
	}
}

// CompatibleTemplates returns the templates legally safe to populate for the
// given type. Unknown types yield an empty slice, never an error.
func (m *Matrix) CompatibleTemplates(t CanonicalType) []TemplateName {
	templates := m.edges[t]
	out := make([]TemplateName, len(templates))
	copy(out, templates)
	return out
}

// IsCompatible reports whether the template may be populated for the type.
// Always agrees with CompatibleTemplates membership.
func (m *Matrix) IsCompatible(t CanonicalType, name TemplateName) bool {
	for _, n := range m.edges[t] {
		if n == name {
			return true
		}
	}
	return false
}

// IsSupported reports whether at least one template exists for the type.
func (m *Matrix) IsSupported(t CanonicalType) bool {
	return len(m.edges[t]) > 0
}
