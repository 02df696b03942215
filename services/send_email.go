package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rpupo63/ai-portfolio-site/config"
	"github.com/rpupo63/ai-portfolio-site/errs"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// Email is a single outgoing message.
type Email struct {
	Subject    string
	HTML       string
	Recipients []string
	ReplyTo    string
}

// Mailer sends email through the Resend HTTP API.
type Mailer struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

type MailerOption func(*Mailer)

func WithEndpoint(endpoint string) MailerOption {
	return func(m *Mailer) { m.endpoint = endpoint }
}

func WithHTTPClient(client *http.Client) MailerOption {
	return func(m *Mailer) { m.client = client }
}

func NewMailer(apiKey, from string, opts ...MailerOption) *Mailer {
	m := &Mailer{
		apiKey:   apiKey,
		from:     from,
		endpoint: resendEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewMailerFromConfig reads RESEND_API_KEY and RESEND_FROM_EMAIL.
func NewMailerFromConfig(cfg map[string]string) (*Mailer, error) {
	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("%w: RESEND_API_KEY", errs.ErrConfigMissing)
	}
	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
	if fromEmail == "" {
		return nil, fmt.Errorf("%w: RESEND_FROM_EMAIL", errs.ErrConfigMissing)
	}
	return NewMailer(apiKey, fromEmail), nil
}

// Send posts the email and returns the Resend message id.
func (m *Mailer) Send(ctx context.Context, email Email) (string, error) {
	if len(email.Recipients) == 0 {
		return "", fmt.Errorf("at least one recipient is required")
	}

	jsonPayload, err := json.Marshal(ResendEmailRequest{
		From:    m.from,
		To:      email.Recipients,
		Subject: email.Subject,
		Html:    email.HTML,
		ReplyTo: email.ReplyTo,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return "", fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return "", fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return "", fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
		return "", nil
	}
	log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	return emailResponse.ID, nil
}
