package services

import (
	"fmt"

	"github.com/rpupo63/ai-portfolio-site/config"
	"github.com/rpupo63/ai-portfolio-site/errs"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageCreator is the slice of the Twilio REST client used here.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSSender sends text messages through Twilio.
type SMSSender struct {
	api  messageCreator
	from string
}

func NewSMSSender(api messageCreator, from string) *SMSSender {
	return &SMSSender{api: api, from: from}
}

// NewSMSSenderFromConfig needs TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_FROM_NUMBER.
func NewSMSSenderFromConfig(cfg map[string]string) (*SMSSender, error) {
	sid := config.GetString(cfg, "TWILIO_ACCOUNT_SID", "")
	token := config.GetString(cfg, "TWILIO_AUTH_TOKEN", "")
	from := config.GetString(cfg, "TWILIO_FROM_NUMBER", "")
	for key, value := range map[string]string{
		"TWILIO_ACCOUNT_SID": sid,
		"TWILIO_AUTH_TOKEN":  token,
		"TWILIO_FROM_NUMBER": from,
	} {
		if value == "" {
			return nil, fmt.Errorf("%w: %s", errs.ErrConfigMissing, key)
		}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: sid,
		Password: token,
	})
	return NewSMSSender(client.Api, from), nil
}

// SendSMS returns the Twilio message SID.
func (s *SMSSender) SendSMS(to, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("twilio create message: %w", err)
	}
	if resp == nil || resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}
