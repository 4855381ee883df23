// Package metrics exposes request form counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "requestbot"

// Metrics implements bot.Recorder.
type Metrics struct {
	formsStarted   prometheus.Counter
	inputsRejected *prometheus.CounterVec
	submissions    *prometheus.CounterVec
}

// New registers the form metrics on reg. activeSessions reports the number of
// forms currently in progress.
func New(reg prometheus.Registerer, activeSessions func() int) *Metrics {
	m := &Metrics{
		formsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forms_started_total",
			Help:      "Request forms started with the start button.",
		}),
		inputsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inputs_rejected_total",
			Help:      "Answers rejected by validation, by step.",
		}, []string{"step"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Completed forms handed to the spreadsheet, by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.formsStarted,
		m.inputsRejected,
		m.submissions,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Forms in progress.",
		}, func() float64 { return float64(activeSessions()) }),
	)

	return m
}

func (m *Metrics) FormStarted() {
	m.formsStarted.Inc()
}

func (m *Metrics) InputRejected(step string) {
	m.inputsRejected.WithLabelValues(step).Inc()
}

func (m *Metrics) Submitted() {
	m.submissions.WithLabelValues("ok").Inc()
}

func (m *Metrics) SubmitFailed() {
	m.submissions.WithLabelValues("error").Inc()
}
