package bot

import (
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"", false},
		{"+", false},
		{"12345", false},
		{"123456789", false},
		{"1234567890", true},
		{"+1234567890", true},
		{"+12025550123", true},
		{"123456789012345", true},
		{"1234567890123456", false},
		{"++1234567890", false},
		{"+7 999 123 45 67", false},
		{"8-999-123-45-67", false},
		{"79991234567 ", false},
		{"1234567890+", false},
		{"١٢٣٤٥٦٧٨٩٠", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePhone(tt.phone))
		})
	}
}

func TestTelegramHandle(t *testing.T) {
	assert.Equal(t, "@anna_k", TelegramHandle(pointer.ToString("anna_k"), "Не указан"))
	assert.Equal(t, "Не указан", TelegramHandle(nil, "Не указан"))
	assert.Equal(t, "Не указан", TelegramHandle(pointer.ToString(""), "Не указан"))
}

func TestIsCommand(t *testing.T) {
	assert.True(t, isCommand("/start", "/start"))
	assert.True(t, isCommand("/start promo", "/start"))
	assert.True(t, isCommand("/start@request_bot", "/start"))
	assert.False(t, isCommand("/started", "/start"))
	assert.False(t, isCommand("start", "/start"))
}

func TestStepNext(t *testing.T) {
	var order []Step
	for s := StepName; s != StepIdle; s = s.Next() {
		order = append(order, s)
	}

	assert.Equal(t, FormSteps, order)
	assert.Equal(t, "waiting_for_start_dates", StepStartDates.String())
	assert.Equal(t, "unknown", Step(42).String())
	assert.Equal(t, StepIdle, Step(42).Next())
}
