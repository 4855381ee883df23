package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	BotToken string `env:"BOT_TOKEN"`
	BotDebug bool   `env:"BOT_DEBUG" envDefault:"false"`

	GoogleCredsJSON string `env:"GOOGLE_CREDS_JSON"`
	GoogleCredsFile string `env:"GOOGLE_CREDS_FILE"`
	SpreadsheetID   string `env:"SPREADSHEET_ID"`
	SheetRange      string `env:"SHEET_RANGE" envDefault:"Sheet1"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFileName string `env:"LOG_FILE_NAME" envDefault:"requestbot.log"`

	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	WebhookURL  string `env:"WEBHOOK_URL"`
	WebhookPath string `env:"WEBHOOK_PATH" envDefault:"/telegram/webhook"`

	DBDriver string `env:"DB_DRIVER"`
	DBDSN    string `env:"DB_DSN"`

	RawManagerChatIDs string `env:"MANAGER_CHAT_IDS"`
	ManagerChatIDs    []int64

	CatalogPath string `env:"CATALOG_PATH"`
}

var dbDrivers = map[string]bool{
	"postgres": true,
	"mysql":    true,
	"sqlite":   true,
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info("config.Load: no .env file found - using env variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("config.Load: BOT_TOKEN is required")
	}

	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("config.Load: SPREADSHEET_ID is required")
	}

	if cfg.GoogleCredsJSON == "" && cfg.GoogleCredsFile == "" {
		return nil, fmt.Errorf("config.Load: GOOGLE_CREDS_JSON or GOOGLE_CREDS_FILE is required")
	}

	if (cfg.DBDriver == "") != (cfg.DBDSN == "") {
		return nil, fmt.Errorf("config.Load: DB_DRIVER and DB_DSN must be set together")
	}

	if cfg.DBDriver != "" && !dbDrivers[cfg.DBDriver] {
		return nil, fmt.Errorf("config.Load: unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if !strings.HasPrefix(cfg.WebhookPath, "/") {
		return nil, fmt.Errorf("config.Load: WEBHOOK_PATH must start with /")
	}

	ids, err := parseChatIDs(cfg.RawManagerChatIDs)
	if err != nil {
		return nil, fmt.Errorf("config.Load: MANAGER_CHAT_IDS: %w", err)
	}
	cfg.ManagerChatIDs = ids

	return cfg, nil
}

// GoogleCredentials returns the service-account JSON, reading the file if
// no inline JSON was given.
func (c *Config) GoogleCredentials() ([]byte, error) {
	if c.GoogleCredsJSON != "" {
		return []byte(c.GoogleCredsJSON), nil
	}

	data, err := os.ReadFile(c.GoogleCredsFile)
	if err != nil {
		return nil, fmt.Errorf("Config.GoogleCredentials: %w", err)
	}

	return data, nil
}

func (c *Config) JournalEnabled() bool {
	return c.DBDriver != ""
}

func (c *Config) WebhookEnabled() bool {
	return c.WebhookURL != ""
}

func parseChatIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
