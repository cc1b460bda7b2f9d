// Package mail delivers plain notification e-mails.
package mail

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// Address is a named mailbox.
type Address struct {
	Name  string
	Email string
}

// Message is a single e-mail. Recipients are BCC'd so students do not see each other.
type Message struct {
	Bcc     []Address
	Subject string
	Text    string
}

// HasRecipients reports whether the message can be delivered.
func (m Message) HasRecipients() bool {
	return len(m.Bcc) > 0
}

// Mailer sends messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SendgridMailer delivers through the SendGrid v3 API.
type SendgridMailer struct {
	apiKey     string
	from       *sgmail.Email
	subjPrefix string
}

// NewSendgridMailer constructs a SendGrid backed mailer.
func NewSendgridMailer(apiKey string, from Address, appName string) *SendgridMailer {
	return &SendgridMailer{
		apiKey:     apiKey,
		from:       sgmail.NewEmail(from.Name, from.Email),
		subjPrefix: "[" + appName + "] ",
	}
}

// Send implements Mailer.
func (s *SendgridMailer) Send(ctx context.Context, msg Message) error {
	if !msg.HasRecipients() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	req := sendgrid.GetRequest(s.apiKey, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(s.prepare(msg))

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("send email: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}

func (s *SendgridMailer) prepare(msg Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = s.subjPrefix + msg.Subject
	p.AddTos(s.from)
	for _, bcc := range msg.Bcc {
		p.AddBCCs(sgmail.NewEmail(bcc.Name, bcc.Email))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", msg.Text))
	return m
}

// LogMailer writes messages to the logger instead of sending them.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer constructs a mailer for development environments.
func NewLogMailer(logger *zap.Logger) *LogMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogMailer{logger: logger}
}

// Send implements Mailer.
func (l *LogMailer) Send(_ context.Context, msg Message) error {
	if !msg.HasRecipients() {
		return nil
	}
	recipients := make([]string, 0, len(msg.Bcc))
	for _, addr := range msg.Bcc {
		recipients = append(recipients, addr.Email)
	}
	l.logger.Info("email",
		zap.String("subject", msg.Subject),
		zap.String("recipients", strings.Join(recipients, ",")),
		zap.Int("length", len(msg.Text)),
	)
	return nil
}
