// Package telegram connects the request form to the Telegram Bot API.
package telegram

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/gratefultolord/study_request_bot/internal/bot"
)

// Gateway sends form messages through a Bot API client.
type Gateway struct {
	botAPI *tgbotapi.BotAPI
}

func NewGateway(botAPI *tgbotapi.BotAPI) *Gateway {
	return &Gateway{
		botAPI: botAPI,
	}
}

func (g *Gateway) Send(_ context.Context, out bot.Outbound) error {
	msg := tgbotapi.NewMessage(out.ChatID, out.Text)
	if markup := replyMarkup(out.Keyboard); markup != nil {
		msg.ReplyMarkup = markup
	}

	if _, err := g.botAPI.Send(msg); err != nil {
		return fmt.Errorf("Gateway.Send: chat %d: %w", out.ChatID, err)
	}

	return nil
}

func replyMarkup(kb *bot.Keyboard) interface{} {
	if kb == nil {
		return nil
	}

	if kb.Remove {
		return tgbotapi.NewRemoveKeyboard(true)
	}

	rows := make([][]tgbotapi.KeyboardButton, 0, len(kb.Rows))
	for _, labels := range kb.Rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(labels))
		for _, label := range labels {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
		}
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(buttons...))
	}

	markup := tgbotapi.NewReplyKeyboard(rows...)
	markup.OneTimeKeyboard = kb.OneTime

	return markup
}

// ToInbound extracts a form message from an update. Updates without a
// message or sender are skipped.
func ToInbound(update tgbotapi.Update) (bot.Inbound, bool) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return bot.Inbound{}, false
	}

	in := bot.Inbound{
		UserID: msg.From.ID,
		ChatID: msg.Chat.ID,
		Text:   msg.Text,
	}
	if msg.From.UserName != "" {
		in.Username = pointer.ToString(msg.From.UserName)
	}

	return in, true
}
