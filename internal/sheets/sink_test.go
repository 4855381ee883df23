package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/gratefultolord/study_request_bot/internal/models"
)

func newTestSink(t *testing.T, handler http.HandlerFunc) *Sink {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	service, err := sheets.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	return NewWithService(service, "sheet-id", "Sheet1")
}

func TestSinkAppend(t *testing.T) {
	var (
		gotPath  string
		gotQuery map[string][]string
		gotBody  struct {
			Values [][]string `json:"values"`
		}
	)

	sink := newTestSink(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"spreadsheetId":"sheet-id"}`))
	})

	sub := models.Submission{
		Name:        "Anna",
		Phone:       "+12025550123",
		Telegram:    "@anna_k",
		Region:      "Центр",
		Period:      "Год",
		Level:       "Начальный",
		StartDates:  "в сентябре",
		Visa:        "Нет",
		Budget:      "5000",
		SubmittedAt: time.Date(2024, 9, 1, 8, 30, 0, 0, time.Local),
	}

	require.NoError(t, sink.Append(context.Background(), sub))

	assert.Equal(t, "/v4/spreadsheets/sheet-id/values/Sheet1:append", gotPath)
	assert.Equal(t, []string{"RAW"}, gotQuery["valueInputOption"])
	assert.Equal(t, []string{"INSERT_ROWS"}, gotQuery["insertDataOption"])
	require.Len(t, gotBody.Values, 1)
	assert.Equal(t, sub.Row(), gotBody.Values[0])
	assert.Len(t, gotBody.Values[0], 11)
	assert.Equal(t, "", gotBody.Values[0][9])
}

func TestSinkAppendError(t *testing.T) {
	sink := newTestSink(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"forbidden"}}`))
	})

	err := sink.Append(context.Background(), models.Submission{SubmittedAt: time.Now()})
	assert.ErrorContains(t, err, "Sink.Append")
}
