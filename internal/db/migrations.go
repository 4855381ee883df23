package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS submissions (
	    id               VARCHAR(36) PRIMARY KEY,
	    telegram_user_id BIGINT NOT NULL,
	    name             TEXT NOT NULL,
	    phone            TEXT NOT NULL,
	    telegram         TEXT NOT NULL,
	    region           TEXT NOT NULL,
	    period           TEXT NOT NULL,
	    level            TEXT NOT NULL,
	    start_dates      TEXT NOT NULL,
	    visa             TEXT NOT NULL,
	    budget           TEXT NOT NULL,
	    message          TEXT NOT NULL,
	    submitted_at     VARCHAR(19) NOT NULL
	)`,
}

// RunMigrations creates the journal schema. Every statement is idempotent.
func RunMigrations(conn *sqlx.DB) error {
	for i, stmt := range migrations {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("db.RunMigrations: statement %d: %w", i, err)
		}
	}

	return nil
}
