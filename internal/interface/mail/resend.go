package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"flightcast-service/internal/domain/repository"
	"flightcast-service/pkg/logger"
	"flightcast-service/pkg/metrics"
)

// ResendRelay sends rendered messages through the Resend API
type ResendRelay struct {
	client   *resend.Client
	fromName string
	fromAddr string
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewResendRelay creates a new mail relay
func NewResendRelay(apiKey, fromName, fromAddr string, m *metrics.Metrics, logger logger.Logger) repository.MailRepository {
	return &ResendRelay{
		client:   resend.NewClient(apiKey),
		fromName: fromName,
		fromAddr: fromAddr,
		metrics:  m,
		logger:   logger,
	}
}

// Send relays one outbound mail. Failures leave the rendered artifact with
// the caller for retry or manual copy.
func (r *ResendRelay) Send(ctx context.Context, mail *repository.OutboundMail) error {
	params := &resend.SendEmailRequest{
		From:    r.fromHeader(mail),
		To:      []string{mail.To},
		Subject: mail.Subject,
		Html:    mail.HTML,
		Text:    mail.Text,
		ReplyTo: mail.ReplyTo,
	}

	_, err := r.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		r.metrics.MailsFailed.Inc()
		r.logger.Error("Failed to relay email", "to", mail.To, "subject", mail.Subject, "error", err)
		return fmt.Errorf("email send failed: %w", err)
	}

	r.metrics.MailsSent.Inc()
	r.logger.Info("Email relayed", "to", mail.To, "subject", mail.Subject)
	return nil
}

// fromHeader builds the RFC 5322 From header, preferring the per-message
// identity over the relay defaults field by field.
func (r *ResendRelay) fromHeader(mail *repository.OutboundMail) string {
	name := r.fromName
	if mail.FromName != "" {
		name = mail.FromName
	}
	addr := r.fromAddr
	if mail.FromAddress != "" {
		addr = mail.FromAddress
	}
	return fmt.Sprintf("%s <%s>", name, addr)
}
