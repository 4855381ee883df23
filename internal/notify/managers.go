// Package notify forwards each new request to the managers' chats.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/gratefultolord/study_request_bot/internal/bot"
	"github.com/gratefultolord/study_request_bot/internal/models"
)

type Managers struct {
	messenger bot.Messenger
	chatIDs   []int64
}

func NewManagers(messenger bot.Messenger, chatIDs []int64) *Managers {
	return &Managers{
		messenger: messenger,
		chatIDs:   chatIDs,
	}
}

// Append sends the request summary to every manager chat. A failed chat does
// not stop delivery to the rest; all failures are returned joined.
func (m *Managers) Append(ctx context.Context, sub models.Submission) error {
	text := FormatRequest(sub)

	var errs []error
	for _, chatID := range m.chatIDs {
		if err := m.messenger.Send(ctx, bot.Outbound{ChatID: chatID, Text: text}); err != nil {
			errs = append(errs, fmt.Errorf("chat %d: %w", chatID, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("Managers.Append: %w", errors.Join(errs...))
	}

	return nil
}

func FormatRequest(sub models.Submission) string {
	message := sub.Message
	if message == "" {
		message = "—"
	}

	return fmt.Sprintf(
		"Новая заявка\nИмя: %s\nТелефон: %s\nTelegram: %s\nРегион: %s\nСрок обучения: %s\n"+
			"Уровень языка: %s\nДаты начала: %s\nВиза: %s\nБюджет: %s\nСообщение: %s\nВремя: %s",
		sub.Name, sub.Phone, sub.Telegram, sub.Region, sub.Period,
		sub.Level, sub.StartDates, sub.Visa, sub.Budget, message, sub.Timestamp(),
	)
}
