package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"missing-person-tracker/internal/config"
	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/pkg/i18n"
)

//go:embed templates/*.html
var templates embed.FS

type Service interface {
	SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error
	SendCaseFoundEmail(ctx context.Context, toEmail, recipientName string, mp *domain.MissingPerson) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

// NewService returns a Resend-backed sender, or a no-op sender when no API
// key is configured.
func NewService(cfg *config.Config) Service {
	if cfg.ResendAPIKey == "" {
		return noopService{}
	}
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

func render(templateName string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(templates, "templates/layout.html", "templates/"+templateName)
	if err != nil {
		return "", fmt.Errorf("failed to parse email templates: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.ExecuteTemplate(&body, "layout", data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

func (s *service) sendEmail(ctx context.Context, toEmail, subject, templateName string, data interface{}) error {
	html, err := render(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Missing Person Tracker <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    html,
		Subject: subject,
	}

	_, err = s.client.Emails.Send(params)
	return err
}

func (s *service) SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error {
	subject := i18n.Translate(i18n.DefaultLocale, "email.welcome.subject")
	data := struct {
		Title string
		Name  string
		Link  string
	}{
		Title: subject,
		Name:  fullName,
		Link:  fmt.Sprintf("https://%s/login", s.config.Domain),
	}
	return s.sendEmail(ctx, toEmail, subject, "welcome.html", data)
}

func (s *service) SendCaseFoundEmail(ctx context.Context, toEmail, recipientName string, mp *domain.MissingPerson) error {
	subject := i18n.Format(i18n.DefaultLocale, "email.found.subject", map[string]string{"name": mp.FullName})
	data := struct {
		Title         string
		Name          string
		PersonName    string
		CaseNumber    string
		FoundLocation string
		Link          string
	}{
		Title:      subject,
		Name:       recipientName,
		PersonName: mp.FullName,
		CaseNumber: mp.CaseNumber,
		Link:       fmt.Sprintf("https://%s/cases/%s", s.config.Domain, mp.ID),
	}
	if mp.FoundLocation != nil {
		data.FoundLocation = *mp.FoundLocation
	}
	return s.sendEmail(ctx, toEmail, subject, "case_found.html", data)
}

type noopService struct{}

func (noopService) SendWelcomeEmail(context.Context, string, string) error { return nil }

func (noopService) SendCaseFoundEmail(context.Context, string, string, *domain.MissingPerson) error {
	return nil
}
