package analyzer

import "fmt"

// AnalysisSystemPrompt frames the model as a legal assistant for Indian SMEs.
const AnalysisSystemPrompt = `You are an expert legal assistant for Indian Small and Medium Enterprises (SMEs).
Your goal is to analyze contracts, identify risks under Indian Law, and explain terms in simple business language.
Output purely valid JSON without markdown formatting.`

// ExtractionSystemPrompt frames the model as a strict data extraction assistant.
const ExtractionSystemPrompt = `You are a precise data extraction assistant. Return only valid JSON.`

// ChatSystemPrompt frames the model for contract Q&A.
const ChatSystemPrompt = `You are a helpful legal assistant for Indian SMEs. Answer based on the contract provided.`

// BuildAnalysisPrompt returns the full-contract analysis prompt. contextStr
// summarizes pre-extracted entities (parties, dates, monetary amounts).
func BuildAnalysisPrompt(contractText, contextStr string) string {
	return fmt.Sprintf(`Analyze the following contract text.
Context: %s

Perform the following tasks:
1. **Classify**: Determine the type of contract (e.g., Employment, Lease, Service, NDA).
2. **Risk Assessment**:
   - Assign a "Risk Score" (Low, Medium, High) for the whole contract.
   - Assign a numeric score (0-100, where 100 is extremely risky).
   - Identify "Unfavorable Terms" specifically for an SME context (e.g., one-sided termination, heavy indemnity, non-compete).
   - Flag "Compliance Issues" relative to common Indian laws (e.g., Notice period norms, Payment terms).
3. **Ambiguity Detection**:
   - Identify clauses that are vague, unclear, or open to interpretation (e.g., "reasonable time", "mutual agreement").
4. **Clause Analysis**:
   - For key clauses, provide a "Plain Language Explanation".
   - If a clause is risky, suggest a "Negotiation Tip" or "Alternative Clause".
5. **Summary**: Provide a 3-sentence summary of the contract.

**Output Format (JSON)**:
{
  "contract_type": "string",
  "summary": "string",
  "overall_risk_score": "Low/Medium/High",
  "numeric_risk_score": 0-100,
  "key_risks": [
    { "clause": "excerpt...", "risk": "explanation...", "severity": "High/Medium/Low" }
  ],
  "ambiguous_clauses": [
    { "clause": "text snippet...", "reason": "why it is vague" }
  ],
  "clauses_analysis": [
    { "title": "clause topic", "text": "original text snippet", "explanation": "simple english", "risk_level": "Low/Med/High", "recommendation": "tip" }
  ],
  "missing_clauses": ["list of important clauses missing"]
}

Contract Text:
%s`, contextStr, contractText)
}

// BuildExtractionPrompt returns the template-field extraction prompt. Fields
// absent from the contract must come back as the exact sentinel string so the
// template populator can sweep them.
func BuildExtractionPrompt(contractText string) string {
	return fmt.Sprintf(`Extract the following fields from the contract text.
Return ONLY valid JSON. Do NOT hallucinate or infer missing information.

If a field is not explicitly stated in the contract, return: "Not specified in the provided contract"

Required fields:
- contract_type: Type of contract (Service Agreement/Employment Agreement/NDA/Other)
- services: Description of services/work/responsibilities
- amount: Payment amount or compensation
- termination_notice: Termination notice period
- confidentiality: Confidentiality clause text
- provider: Provider/Employer/Disclosing party name
- client: Client/Employee/Receiving party name
- start_date: Start date
- end_date: End date or duration
- payment_terms: Payment terms (e.g., "Net 30 days", "50%% upfront")
- jurisdiction: Governing law jurisdiction

Contract Text:
%s

Return ONLY the JSON object, no markdown formatting.`, contractText)
}
