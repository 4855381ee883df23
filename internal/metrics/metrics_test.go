package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	active := 3
	m := New(reg, func() int { return active })

	m.FormStarted()
	m.FormStarted()
	m.InputRejected("waiting_for_phone")
	m.Submitted()
	m.SubmitFailed()
	m.SubmitFailed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.formsStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inputsRejected.WithLabelValues("waiting_for_phone")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissions.WithLabelValues("ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissions.WithLabelValues("error")))

	count, err := testutil.GatherAndCount(reg, "requestbot_active_sessions")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}
