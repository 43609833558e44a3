package sms

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"

	"missing-person-tracker/internal/config"
	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/pkg/i18n"
)

type Service interface {
	SendCaseFound(ctx context.Context, toPhone string, mp *domain.MissingPerson) error
}

// MessageSender is the slice of the Twilio client this package uses.
type MessageSender interface {
	CreateMessage(params *api.CreateMessageParams) (*api.ApiV2010Message, error)
}

type service struct {
	sender     MessageSender
	fromNumber string
}

// NewService returns a Twilio-backed sender, or a no-op sender when Twilio is
// not configured.
func NewService(cfg *config.Config) Service {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioFromNumber == "" {
		return noopService{}
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	return NewServiceWithSender(client.Api, cfg.TwilioFromNumber)
}

func NewServiceWithSender(sender MessageSender, fromNumber string) Service {
	return &service{sender: sender, fromNumber: fromNumber}
}

func (s *service) SendCaseFound(ctx context.Context, toPhone string, mp *domain.MissingPerson) error {
	body := i18n.Format(i18n.DefaultLocale, "sms.found", map[string]string{
		"case_number": mp.CaseNumber,
		"name":        mp.FullName,
	})

	params := &api.CreateMessageParams{}
	params.SetTo(toPhone)
	params.SetFrom(s.fromNumber)
	params.SetBody(body)

	if _, err := s.sender.CreateMessage(params); err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	return nil
}

type noopService struct{}

func (noopService) SendCaseFound(context.Context, string, *domain.MissingPerson) error { return nil }
