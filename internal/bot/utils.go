package bot

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?\d{10,15}$`)

func NormalizeText(text string) string {
	return strings.TrimSpace(text)
}

// ValidatePhone accepts an optional leading plus followed by 10 to 15 digits.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// TelegramHandle returns "@username", or notProvided when the user has no username.
func TelegramHandle(username *string, notProvided string) string {
	if username == nil || *username == "" {
		return notProvided
	}

	return "@" + *username
}

func isCommand(text, command string) bool {
	return text == command || strings.HasPrefix(text, command+" ") || strings.HasPrefix(text, command+"@")
}
