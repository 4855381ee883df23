package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gratefultolord/study_request_bot/internal/models"
)

const startCommand = "/start"

type BotService struct {
	catalog   *Catalog
	store     SessionStore
	sink      Sink
	messenger Messenger
	recorder  Recorder
	now       func() time.Time
}

type Option func(*BotService)

// WithClock replaces time.Now as the source of submission timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *BotService) {
		b.now = now
	}
}

func WithRecorder(r Recorder) Option {
	return func(b *BotService) {
		b.recorder = r
	}
}

func New(
	catalog *Catalog,
	store SessionStore,
	sink Sink,
	messenger Messenger,
	opts ...Option,
) *BotService {
	b := &BotService{
		catalog:   catalog,
		store:     store,
		sink:      sink,
		messenger: messenger,
		recorder:  nopRecorder{},
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Handle processes one inbound message and sends exactly one reply.
// On the last step the submission is handed to the sink before replying.
func (b *BotService) Handle(ctx context.Context, in Inbound) error {
	text := NormalizeText(in.Text)

	if isCommand(text, startCommand) {
		return b.reply(ctx, in.ChatID, b.catalog.Welcome, b.catalog.StartKeyboard())
	}

	if text == b.catalog.StartButton {
		return b.handleStartButton(ctx, in)
	}

	session, ok := b.store.Get(in.UserID)
	if !ok {
		return b.reply(ctx, in.ChatID, b.catalog.NoSession, b.catalog.StartKeyboard())
	}

	switch session.Step {
	case StepName, StepStartDates, StepBudget:
		return b.handleFreeText(ctx, in, session, text)
	case StepPhone:
		return b.handlePhone(ctx, in, session, text)
	case StepRegion, StepPeriod, StepLevel, StepVisa:
		return b.handleChoice(ctx, in, session, text)
	case StepMessage:
		return b.handleMessage(ctx, in, session, text)
	default:
		logrus.WithFields(logrus.Fields{
			"user_id": in.UserID,
			"step":    session.Step,
		}).Warn("unknown step, resetting form")

		b.store.Remove(in.UserID)

		return b.reply(ctx, in.ChatID, b.catalog.Restart, b.catalog.StartKeyboard())
	}
}

func (b *BotService) handleStartButton(ctx context.Context, in Inbound) error {
	b.store.Set(in.UserID, NewSession())
	b.recorder.FormStarted()

	logrus.WithField("user_id", in.UserID).Info("request form started")

	return b.sendPrompt(ctx, in.ChatID, StepName)
}

func (b *BotService) handleFreeText(ctx context.Context, in Inbound, session Session, text string) error {
	if text == "" {
		return b.reject(ctx, in, session.Step)
	}

	return b.advance(ctx, in, session, text)
}

func (b *BotService) handlePhone(ctx context.Context, in Inbound, session Session, text string) error {
	if !ValidatePhone(text) {
		return b.reject(ctx, in, session.Step)
	}

	session.Fields[FieldTelegram] = TelegramHandle(in.Username, b.catalog.NotProvided)

	return b.advance(ctx, in, session, text)
}

func (b *BotService) handleChoice(ctx context.Context, in Inbound, session Session, text string) error {
	if !b.catalog.Allows(session.Step, text) {
		return b.reject(ctx, in, session.Step)
	}

	return b.advance(ctx, in, session, text)
}

func (b *BotService) handleMessage(ctx context.Context, in Inbound, session Session, text string) error {
	if text == "" {
		return b.reject(ctx, in, session.Step)
	}

	if strings.EqualFold(text, b.catalog.DeclineWord) {
		text = ""
	}

	session.Fields[FieldMessage] = text
	b.store.Set(in.UserID, session)

	sub := buildSubmission(in.UserID, session, b.now())

	if err := b.sink.Append(ctx, sub); err != nil {
		b.recorder.SubmitFailed()

		logrus.WithError(err).WithField("user_id", in.UserID).Error("failed to append submission")

		if sendErr := b.reply(ctx, in.ChatID, b.catalog.SubmitFailed, nil); sendErr != nil {
			logrus.WithError(sendErr).WithField("user_id", in.UserID).Error("failed to send submit error")
		}

		return fmt.Errorf("BotService.handleMessage: %w", err)
	}

	b.store.Remove(in.UserID)
	b.recorder.Submitted()

	logrus.WithField("user_id", in.UserID).Info("request submitted")

	return b.reply(ctx, in.ChatID, b.catalog.Thanks, b.catalog.StartKeyboard())
}

func (b *BotService) advance(ctx context.Context, in Inbound, session Session, text string) error {
	session.Fields[session.Step.Field()] = text
	session.Step = session.Step.Next()
	b.store.Set(in.UserID, session)

	logrus.WithFields(logrus.Fields{
		"user_id": in.UserID,
		"step":    session.Step,
	}).Debug("form advanced")

	return b.sendPrompt(ctx, in.ChatID, session.Step)
}

// reject repeats the step's error text and keyboard without changing the session.
func (b *BotService) reject(ctx context.Context, in Inbound, step Step) error {
	b.recorder.InputRejected(step.String())

	logrus.WithFields(logrus.Fields{
		"user_id": in.UserID,
		"step":    step,
	}).Debug("input rejected")

	return b.reply(ctx, in.ChatID, b.catalog.Prompt(step).Error, b.catalog.Keyboard(step))
}

func (b *BotService) sendPrompt(ctx context.Context, chatID int64, step Step) error {
	return b.reply(ctx, chatID, b.catalog.Prompt(step).Text, b.catalog.Keyboard(step))
}

func (b *BotService) reply(ctx context.Context, chatID int64, text string, keyboard *Keyboard) error {
	err := b.messenger.Send(ctx, Outbound{
		ChatID:   chatID,
		Text:     text,
		Keyboard: keyboard,
	})
	if err != nil {
		return fmt.Errorf("BotService.reply: %w", err)
	}

	return nil
}

func buildSubmission(userID int64, session Session, now time.Time) models.Submission {
	f := session.Fields

	return models.Submission{
		UserID:      userID,
		Name:        f[FieldName],
		Phone:       f[FieldPhone],
		Telegram:    f[FieldTelegram],
		Region:      f[FieldRegion],
		Period:      f[FieldPeriod],
		Level:       f[FieldLevel],
		StartDates:  f[FieldStartDates],
		Visa:        f[FieldVisa],
		Budget:      f[FieldBudget],
		Message:     f[FieldMessage],
		SubmittedAt: now,
	}
}
