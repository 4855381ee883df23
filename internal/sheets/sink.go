// Package sheets appends submitted requests to a Google spreadsheet.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/gratefultolord/study_request_bot/internal/models"
)

const (
	valueInputOption = "RAW"
	insertDataOption = "INSERT_ROWS"
)

type Sink struct {
	service       *sheets.Service
	spreadsheetID string
	sheetRange    string
}

// New creates a sink authorised with service-account credentials JSON.
func New(ctx context.Context, credentialsJSON []byte, spreadsheetID, sheetRange string) (*Sink, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets.New: %w", err)
	}

	return NewWithService(service, spreadsheetID, sheetRange), nil
}

func NewWithService(service *sheets.Service, spreadsheetID, sheetRange string) *Sink {
	return &Sink{
		service:       service,
		spreadsheetID: spreadsheetID,
		sheetRange:    sheetRange,
	}
}

// Append writes sub as one new row after the last row of the range.
func (s *Sink) Append(ctx context.Context, sub models.Submission) error {
	row := sub.Row()
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}

	_, err := s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, s.sheetRange, &sheets.ValueRange{Values: [][]interface{}{values}}).
		ValueInputOption(valueInputOption).
		InsertDataOption(insertDataOption).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("Sink.Append: %w", err)
	}

	return nil
}
