package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gratefultolord/study_request_bot/internal/config"
)

func TestNewAppRejectsBadLogLevel(t *testing.T) {
	application, err := NewApp(context.Background(), &config.Config{
		BotToken: "123:abc",
		LogLevel: "loud",
	})

	assert.Nil(t, application)
	assert.ErrorContains(t, err, "logcfg.RunLoggerConfig")
}

func TestCloseWithoutJournal(t *testing.T) {
	assert.NotPanics(t, func() {
		(&App{config: &config.Config{}}).Close()
	})
}
