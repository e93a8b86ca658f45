package port

import "context"

// AnalysisNotification carries the details for an analysis-ready email.
type AnalysisNotification struct {
	ContractName string
	ContractType string
	RiskLevel    string
	RiskScore    int
}

// EmailSender defines the contract for sending notification emails.
type EmailSender interface {
	SendAnalysisReady(ctx context.Context, toEmail, toName string, n AnalysisNotification) error
}
