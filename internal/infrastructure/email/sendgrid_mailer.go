package email

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrMissingSendGridAPIKey = errors.New("missing SENDGRID_API_KEY")

// SendGridMailer delivers messages through the SendGrid v3 API.
type SendGridMailer struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

var _ interfaces.IMailer = (*SendGridMailer)(nil)

func NewSendGridMailer(apiKey, fromEmail, fromName string) (*SendGridMailer, error) {
	if apiKey == "" {
		return nil, ErrMissingSendGridAPIKey
	}
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}, nil
}

func (m *SendGridMailer) Send(ctx context.Context, msg entities.EmailMessage) (string, error) {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.ToAddress)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)
	if msg.Tag != "" {
		message.AddCategories(msg.Tag)
	}

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		log.Printf("[email][sendgrid] send failed to=%s err=%v", msg.ToAddress, err)
		return "", err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		log.Printf("[email][sendgrid] send rejected to=%s status=%d", msg.ToAddress, resp.StatusCode)
		return "", &entities.GatewayError{Provider: "sendgrid", StatusCode: resp.StatusCode, Body: resp.Body}
	}

	id := ""
	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		id = ids[0]
	}
	log.Printf("[email][sendgrid] sent to=%s message_id=%s", msg.ToAddress, id)
	return id, nil
}

// LogMailer only logs messages. It is used when EMAIL_MOCK is set or no
// SendGrid key is configured.
type LogMailer struct{}

var _ interfaces.IMailer = LogMailer{}

func (LogMailer) Send(_ context.Context, msg entities.EmailMessage) (string, error) {
	log.Printf("[email][mock] to=%s subject=%q tag=%s html_len=%d", msg.ToAddress, msg.Subject, msg.Tag, len(msg.HTML))
	return fmt.Sprintf("mock-%s", msg.ToAddress), nil
}

// NewMailer picks SendGrid when configured, otherwise the logging mailer.
func NewMailer(apiKey, fromEmail, fromName string, mock bool) interfaces.IMailer {
	if mock {
		log.Printf("[email] mock mode enabled")
		return LogMailer{}
	}
	m, err := NewSendGridMailer(apiKey, fromEmail, fromName)
	if err != nil {
		log.Printf("[email] sendgrid not configured, falling back to log mailer: %v", err)
		return LogMailer{}
	}
	return m
}
