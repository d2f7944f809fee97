package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the activity module: signup outcomes and
// operation latencies.
type Metrics struct {
	Signups            prometheus.Counter
	SignupsRejected    *prometheus.CounterVec
	Unregistrations    prometheus.Counter
	SignupDuration     prometheus.Histogram
	UnregisterDuration prometheus.Histogram
	ListDuration       prometheus.Histogram
}

// New creates a Metrics instance with all activity module metrics registered.
func New() *Metrics {
	return &Metrics{
		Signups: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mergington_signups_total",
			Help: "Total number of successful activity signups",
		}),
		SignupsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mergington_signups_rejected_total",
			Help: "Total number of rejected signups by reason",
		}, []string{"reason"}),
		Unregistrations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mergington_unregistrations_total",
			Help: "Total number of successful unregistrations",
		}),
		SignupDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "mergington_signup_duration_seconds",
			Help:    "Duration of signup operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		UnregisterDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "mergington_unregister_duration_seconds",
			Help:    "Duration of unregister operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ListDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "mergington_list_duration_seconds",
			Help:    "Duration of activity list operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementSignup records a successful signup.
func (m *Metrics) IncrementSignup() {
	m.Signups.Inc()
}

// IncrementSignupRejected records a rejected signup with its reason label.
func (m *Metrics) IncrementSignupRejected(reason string) {
	m.SignupsRejected.WithLabelValues(reason).Inc()
}

// IncrementUnregistration records a successful unregistration.
func (m *Metrics) IncrementUnregistration() {
	m.Unregistrations.Inc()
}

// ObserveSignup records the duration of a signup. Call with time.Now() at the
// start of the operation.
func (m *Metrics) ObserveSignup(start time.Time) {
	m.SignupDuration.Observe(time.Since(start).Seconds())
}

// ObserveUnregister records the duration of an unregister operation.
func (m *Metrics) ObserveUnregister(start time.Time) {
	m.UnregisterDuration.Observe(time.Since(start).Seconds())
}

// ObserveList records the duration of a list operation.
func (m *Metrics) ObserveList(start time.Time) {
	m.ListDuration.Observe(time.Since(start).Seconds())
}
