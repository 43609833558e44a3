// Package alert posts new high-priority cases to a volunteer Telegram chat.
package alert

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"missing-person-tracker/internal/config"
	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/pkg/i18n"
)

type Service interface {
	NewCase(ctx context.Context, mp *domain.MissingPerson) error
}

// Sender is the part of *tgbotapi.BotAPI used here.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type service struct {
	bot    Sender
	chatID int64
}

// NewService connects to Telegram when a token and chat are configured. A
// failed connection is logged and alerts are disabled.
func NewService(cfg *config.Config) Service {
	if cfg.TelegramBotToken == "" || cfg.TelegramChatID == 0 {
		return noopService{}
	}
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		logrus.WithError(err).Warn("telegram alerts disabled")
		return noopService{}
	}
	return NewServiceWithSender(bot, cfg.TelegramChatID)
}

func NewServiceWithSender(bot Sender, chatID int64) Service {
	return &service{bot: bot, chatID: chatID}
}

// ShouldAlert reports whether a case is urgent enough for the channel.
func ShouldAlert(p domain.Priority) bool {
	return p == domain.PriorityHigh || p == domain.PriorityCritical
}

func (s *service) NewCase(ctx context.Context, mp *domain.MissingPerson) error {
	if !ShouldAlert(mp.Priority) {
		return nil
	}
	text := i18n.Format(i18n.DefaultLocale, "alert.new_case", map[string]string{
		"priority":    string(mp.Priority),
		"case_number": mp.CaseNumber,
		"name":        mp.FullName,
		"location":    mp.LastSeenLocation,
		"date":        mp.LastSeenDate.Format("2006-01-02"),
	})
	if _, err := s.bot.Send(tgbotapi.NewMessage(s.chatID, text)); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

type noopService struct{}

func (noopService) NewCase(context.Context, *domain.MissingPerson) error { return nil }
