package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/gratefultolord/study_request_bot/internal/bot"
)

const pollTimeout = 60

type Handler interface {
	Handle(ctx context.Context, in bot.Inbound) error
}

// Dispatcher feeds updates to the handler one at a time, so a user's messages
// are always processed in arrival order.
type Dispatcher struct {
	handler Handler
}

func NewDispatcher(handler Handler) *Dispatcher {
	return &Dispatcher{
		handler: handler,
	}
}

// Run blocks until ctx is done or updates is closed.
func (d *Dispatcher) Run(ctx context.Context, updates <-chan tgbotapi.Update) error {
	for {
		select {
		case <-ctx.Done():
			logrus.Info("dispatcher stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				logrus.Warn("telegram update channel closed")
				return nil
			}

			in, ok := ToInbound(update)
			if !ok {
				continue
			}

			if err := d.handler.Handle(ctx, in); err != nil {
				logrus.WithError(err).WithField("user_id", in.UserID).Error("failed to handle message")
			}
		}
	}
}

// Poll starts long polling and returns the update channel. The channel is
// closed once ctx is done.
func Poll(ctx context.Context, botAPI *tgbotapi.BotAPI) tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	updates := botAPI.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		botAPI.StopReceivingUpdates()
	}()

	return updates
}

// RegisterWebhook points Telegram at url for update delivery.
func RegisterWebhook(botAPI *tgbotapi.BotAPI, url string) error {
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return fmt.Errorf("telegram.RegisterWebhook: %w", err)
	}

	if _, err := botAPI.Request(wh); err != nil {
		return fmt.Errorf("telegram.RegisterWebhook: %w", err)
	}

	return nil
}

// DeleteWebhook switches the bot back to long polling.
func DeleteWebhook(botAPI *tgbotapi.BotAPI) error {
	if _, err := botAPI.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("telegram.DeleteWebhook: %w", err)
	}

	return nil
}
