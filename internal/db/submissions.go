package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gratefultolord/study_request_bot/internal/models"
)

type SubmissionRecord struct {
	ID             string `db:"id"`
	TelegramUserID int64  `db:"telegram_user_id"`
	Name           string `db:"name"`
	Phone          string `db:"phone"`
	Telegram       string `db:"telegram"`
	Region         string `db:"region"`
	Period         string `db:"period"`
	Level          string `db:"level"`
	StartDates     string `db:"start_dates"`
	Visa           string `db:"visa"`
	Budget         string `db:"budget"`
	Message        string `db:"message"`
	SubmittedAt    string `db:"submitted_at"`
}

// SubmissionRepository journals every submitted request row.
type SubmissionRepository struct {
	db *sqlx.DB
}

func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{
		db: db,
	}
}

// Append stores sub under a fresh UUID.
func (r *SubmissionRepository) Append(ctx context.Context, sub models.Submission) error {
	query := r.db.Rebind(`
	    INSERT INTO submissions
		(id, telegram_user_id, name, phone, telegram, region, period, level,
		start_dates, visa, budget, message, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(),
		sub.UserID,
		sub.Name,
		sub.Phone,
		sub.Telegram,
		sub.Region,
		sub.Period,
		sub.Level,
		sub.StartDates,
		sub.Visa,
		sub.Budget,
		sub.Message,
		sub.Timestamp(),
	)
	if err != nil {
		return fmt.Errorf("SubmissionRepository.Append: %w", err)
	}

	return nil
}

func (r *SubmissionRepository) ListByTelegramUserID(ctx context.Context, telegramUserID int64) ([]SubmissionRecord, error) {
	var records []SubmissionRecord

	err := r.db.SelectContext(ctx, &records, r.db.Rebind(`
	    SELECT * FROM submissions
		WHERE telegram_user_id = ?
		ORDER BY submitted_at ASC
	`), telegramUserID)

	if err != nil {
		return nil, fmt.Errorf("SubmissionRepository.ListByTelegramUserID: %w", err)
	}

	return records, nil
}
