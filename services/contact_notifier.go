package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/rpupo63/ai-portfolio-site/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type EmailSender interface {
	Send(ctx context.Context, email Email) (string, error)
}

type TextSender interface {
	SendSMS(to, body string) (string, error)
}

// ContactNotifier tells the site owner about a stored contact message by e-mail and,
// when configured, by SMS. A nil *ContactNotifier is valid and does nothing.
type ContactNotifier struct {
	sender    EmailSender
	recipient string
	sms       TextSender
	smsTo     string
	timeout   time.Duration
	logger    zerolog.Logger
}

func NewContactNotifier(sender EmailSender, recipient string) *ContactNotifier {
	return &ContactNotifier{
		sender:    sender,
		recipient: recipient,
		timeout:   15 * time.Second,
		logger:    log.With().Str("service", "contactNotifier").Logger(),
	}
}

// WithSMS adds a text message channel.
func (n *ContactNotifier) WithSMS(sender TextSender, to string) *ContactNotifier {
	n.sms = sender
	n.smsTo = to
	return n
}

func (n *ContactNotifier) emailEnabled() bool { return n.sender != nil && n.recipient != "" }
func (n *ContactNotifier) smsEnabled() bool   { return n.sms != nil && n.smsTo != "" }

// NotifyNewMessage sends in the background. The caller's response never waits on it.
func (n *ContactNotifier) NotifyNewMessage(msg models.ContactMessage) {
	if n == nil || (!n.emailEnabled() && !n.smsEnabled()) {
		return
	}
	go func() {
		if err := n.Send(context.Background(), msg); err != nil {
			n.logger.Error().Err(err).Str("messageId", msg.ID.String()).Msg("contact notification failed")
		}
	}()
}

// Send delivers the notification synchronously on every configured channel.
func (n *ContactNotifier) Send(ctx context.Context, msg models.ContactMessage) error {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	var sendErrs []error
	if n.emailEnabled() {
		_, err := n.sender.Send(ctx, Email{
			Subject:    fmt.Sprintf("New message: %s", msg.Subject),
			HTML:       contactEmailBody(msg),
			Recipients: []string{n.recipient},
			ReplyTo:    msg.Email,
		})
		if err != nil {
			sendErrs = append(sendErrs, fmt.Errorf("email: %w", err))
		}
	}
	if n.smsEnabled() {
		if _, err := n.sms.SendSMS(n.smsTo, contactSMSBody(msg)); err != nil {
			sendErrs = append(sendErrs, fmt.Errorf("sms: %w", err))
		}
	}
	return errors.Join(sendErrs...)
}

// contactSMSBody keeps the text to a single segment where possible.
func contactSMSBody(msg models.ContactMessage) string {
	body := fmt.Sprintf("New contact message from %s <%s>: %s", msg.Name, msg.Email, msg.Subject)
	if r := []rune(body); len(r) > 160 {
		body = string(r[:157]) + "..."
	}
	return body
}

func contactEmailBody(msg models.ContactMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p><strong>From:</strong> %s &lt;%s&gt;</p>", html.EscapeString(msg.Name), html.EscapeString(msg.Email))
	fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>", html.EscapeString(msg.Subject))
	fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"))
	return b.String()
}
