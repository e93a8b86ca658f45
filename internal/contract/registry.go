package contract

const serviceAgreementTemplate = `SERVICE AGREEMENT

This Service Agreement ("Agreement") is made and entered into on [START_DATE], by and between:

PROVIDER: [PROVIDER] ("Provider")
CLIENT: [CLIENT] ("Client")

1. SERVICES
The Provider agrees to provide the following services:
[SERVICES]

2. COMPENSATION
Total Amount: [AMOUNT]
Payment Terms: [PAYMENT_TERMS]

3. TERM AND TERMINATION
This Agreement shall commence on [START_DATE] and continue until [END_DATE].
Termination Notice: [TERMINATION_NOTICE]

4. CONFIDENTIALITY
[CONFIDENTIALITY]

5. GOVERNING LAW
This Agreement shall be governed by the laws of [JURISDICTION].

IN WITNESS WHEREOF, the parties have executed this Agreement on the date first above written.

______________________                  ______________________
Provider Signature                      Client Signature
`

const ndaTemplate = `NON-DISCLOSURE AGREEMENT (NDA)

This Non-Disclosure Agreement ("Agreement") is entered into on [START_DATE] between:

DISCLOSING PARTY: [PROVIDER]
RECEIVING PARTY: [CLIENT]

1. PURPOSE
The parties wish to explore a business opportunity and protect confidential information.

2. CONFIDENTIAL INFORMATION
"Confidential Information" means all non-public information disclosed by one party to the other, including but not limited to:
[CONFIDENTIALITY]

3. OBLIGATIONS
The Receiving Party agrees to:
a) Use Confidential Information only for the stated Purpose
b) Not disclose such information to any third party without prior written consent
c) Protect the information with the same degree of care used for own confidential information

4. TERM
The obligations of this Agreement shall survive for a period of [TERMINATION_NOTICE].

5. JURISDICTION
This Agreement shall be governed by the laws of [JURISDICTION].

______________________                  ______________________
Disclosing Party                        Receiving Party
`

const employmentAgreementTemplate = `EMPLOYMENT AGREEMENT

Date: [START_DATE]

EMPLOYER: [PROVIDER]
EMPLOYEE: [CLIENT]

1. POSITION
The Employee is appointed to the position described as follows:
[SERVICES]

2. COMPENSATION
Annual Compensation: [AMOUNT]
Payment Terms: [PAYMENT_TERMS]

3. EMPLOYMENT PERIOD
Start Date: [START_DATE]
End Date: [END_DATE]

4. TERMINATION
Notice Period: [TERMINATION_NOTICE]

5. CONFIDENTIALITY
[CONFIDENTIALITY]

6. GOVERNING LAW
This Agreement shall be governed by the laws of [JURISDICTION].

For Employer:                           Employee Acknowledgment:

______________________                  ______________________
Authorized Signatory                    Employee Signature
`

// Registry holds the fixed set of placeholder-bearing templates. Immutable
// after construction.
type Registry struct {
	templates map[TemplateName]string
	order     []TemplateName
}

// NewRegistry builds the template registry.
func NewRegistry() *Registry {
	return &Registry{
		templates: map[TemplateName]string{
			TemplateServiceAgreement:    serviceAgreementTemplate,
			TemplateEmploymentAgreement: employmentAgreementTemplate,
			TemplateNDA:                 ndaTemplate,
		},
		order: []TemplateName{
			TemplateServiceAgreement,
			TemplateEmploymentAgreement,
			TemplateNDA,
		},
	}
}

// Template returns the raw template text for a name.
func (r *Registry) Template(name TemplateName) (string, bool) {
	tpl, ok := r.templates[name]
	return tpl, ok
}

// AllTemplateNames returns every template name in fixed order: Service
// Agreement, Employment Agreement, NDA.
func (r *Registry) AllTemplateNames() []TemplateName {
	out := make([]TemplateName, len(r.order))
	copy(out, r.order)
	return out
}
