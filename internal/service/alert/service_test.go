package alert

import (
	"context"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"missing-person-tracker/internal/domain"
)

type fakeBot struct {
	sent []tgbotapi.Chattable
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func TestNewCase(t *testing.T) {
	mp := &domain.MissingPerson{
		FullName:         "Jane Doe",
		CaseNumber:       "MP2024000007",
		LastSeenLocation: "Central Park",
		LastSeenDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("critical case is posted", func(t *testing.T) {
		bot := &fakeBot{}
		mp.Priority = domain.PriorityCritical
		require.NoError(t, NewServiceWithSender(bot, 42).NewCase(context.Background(), mp))

		require.Len(t, bot.sent, 1)
		msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
		require.True(t, ok)
		assert.Equal(t, int64(42), msg.ChatID)
		assert.Equal(t, "New critical priority case MP2024000007: Jane Doe, last seen at Central Park on 2024-03-01.", msg.Text)
	})

	t.Run("medium case is skipped", func(t *testing.T) {
		bot := &fakeBot{}
		mp.Priority = domain.PriorityMedium
		require.NoError(t, NewServiceWithSender(bot, 42).NewCase(context.Background(), mp))
		assert.Empty(t, bot.sent)
	})
}
