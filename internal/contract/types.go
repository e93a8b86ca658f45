package contract

// CanonicalType is a contract category used for all compatibility decisions.
// The set is closed: every raw label normalizes to exactly one CanonicalType.
type CanonicalType string

const (
	TypeServiceAgreement    CanonicalType = "Service Agreement"
	TypeEmploymentAgreement CanonicalType = "Employment Agreement"
	TypeNDA                 CanonicalType = "NDA"
	TypeOther               CanonicalType = "Other"

	// Recognized but unsupported: no template exists for these.
	TypeLeaseAgreement       CanonicalType = "Lease Agreement"
	TypeRentalAgreement      CanonicalType = "Rental Agreement"
	TypePartnershipAgreement CanonicalType = "Partnership Agreement"
	TypeVendorAgreement      CanonicalType = "Vendor Agreement"
	TypePurchaseAgreement    CanonicalType = "Purchase Agreement"
)

// TemplateName identifies one of the fixed document templates. The set is
// strictly smaller than CanonicalType: unsupported types have no template.
type TemplateName string

const (
	TemplateServiceAgreement    TemplateName = "Service Agreement"
	TemplateEmploymentAgreement TemplateName = "Employment Agreement"
	TemplateNDA                 TemplateName = "NDA"
)

// NotSpecified is the sentinel used for any field the extraction step could
// not find in the source contract, and for any placeholder left unresolved
// after population.
const NotSpecified = "Not specified in the provided contract"

// FieldKeys is the fixed set of keys an extracted field set may carry.
var FieldKeys = []string{
	"services",
	"amount",
	"termination_notice",
	"confidentiality",
	"provider",
	"client",
	"start_date",
	"end_date",
	"payment_terms",
	"jurisdiction",
}

// FieldSet maps extraction field keys to string values. Values may carry the
// NotSpecified sentinel. Produced by the LLM extraction step; read-only here.
type FieldSet map[string]string

// EmptyFieldSet returns a FieldSet with every known key set to NotSpecified.
// Used as the fallback when extraction fails entirely.
func EmptyFieldSet() FieldSet {
	fs := make(FieldSet, len(FieldKeys))
	for _, k := range FieldKeys {
		fs[k] = NotSpecified
	}
	return fs
}
