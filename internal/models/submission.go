package models

import "time"

// TimestampLayout is the format of the last column of a submitted row.
const TimestampLayout = "2006-01-02 15:04:05"

// Submission is a completed request form.
type Submission struct {
	UserID      int64
	Name        string
	Phone       string
	Telegram    string
	Region      string
	Period      string
	Level       string
	StartDates  string
	Visa        string
	Budget      string
	Message     string
	SubmittedAt time.Time
}

// Timestamp returns SubmittedAt in the local wall clock.
func (s Submission) Timestamp() string {
	return s.SubmittedAt.Local().Format(TimestampLayout)
}

// Row returns the spreadsheet row in column order.
func (s Submission) Row() []string {
	return []string{
		s.Name,
		s.Phone,
		s.Telegram,
		s.Region,
		s.Period,
		s.Level,
		s.StartDates,
		s.Visa,
		s.Budget,
		s.Message,
		s.Timestamp(),
	}
}
