package noop

import (
	"context"
	"log"

	"contractiq/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs notifications to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendAnalysisReady(_ context.Context, toEmail, toName string, n port.AnalysisNotification) error {
	log.Printf("[NOOP EMAIL] Analysis ready for %s (%s): %s (%s, risk %s %d/100)",
		toName, toEmail, n.ContractName, n.ContractType, n.RiskLevel, n.RiskScore)
	return nil
}
