package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"contractiq/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendAnalysisReady(ctx context.Context, toEmail, toName string, n port.AnalysisNotification) error {
	subject := fmt.Sprintf("Analysis ready: %s", n.ContractName)
	htmlBody := buildAnalysisReadyHTML(toName, n)
	textBody := fmt.Sprintf(
		"Hi %s,\n\nThe analysis of %q is complete.\n\nContract type: %s\nRisk level: %s (%d/100)\n\nLog in to ContractIQ to review the full report.\n\nContractIQ Team",
		toName, n.ContractName, n.ContractType, n.RiskLevel, n.RiskScore,
	)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildAnalysisReadyHTML(name string, n port.AnalysisNotification) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Your contract analysis is ready</h2>
  <p>Hi %s,</p>
  <p>The analysis of <strong>%s</strong> is complete.</p>
  <table style="border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Contract type</td><td style="padding: 4px 0;">%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Risk level</td><td style="padding: 4px 0;">%s (%d/100)</td></tr>
  </table>
  <p>Log in to ContractIQ to review the full report, export it, or ask questions about the contract.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">ContractIQ - Contract Analysis for SMEs</p>
</body>
</html>`, name, n.ContractName, n.ContractType, n.RiskLevel, n.RiskScore)
}
