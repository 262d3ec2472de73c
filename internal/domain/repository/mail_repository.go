package repository

import "context"

// OutboundMail is one message handed to the relay. The from-identity fields
// override the relay's configured defaults when set.
type OutboundMail struct {
	To          string
	Subject     string
	HTML        string
	Text        string
	FromName    string
	FromAddress string
	ReplyTo     string
}

// MailRepository defines the outbound mail relay boundary
type MailRepository interface {
	Send(ctx context.Context, mail *OutboundMail) error
}
