package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the tips module.
// Tracks lifecycle counts and sweep behavior.
type Metrics struct {
	TipsCreated   *prometheus.CounterVec
	TipsExpired   prometheus.Counter
	TipsDeleted   prometheus.Counter
	EditsRejected prometheus.Counter
	SweepDuration prometheus.Histogram
	SweepFailures prometheus.Counter
}

// New creates a new Metrics instance with all tips module metrics registered.
func New() *Metrics {
	return &Metrics{
		TipsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tipline_tips_created_total",
			Help: "Total number of tips created, by type",
		}, []string{"type"}),
		TipsExpired: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tipline_tips_expired_total",
			Help: "Total number of tips transitioned to expired by the sweep",
		}),
		TipsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tipline_tips_deleted_total",
			Help: "Total number of tips hard-deleted",
		}),
		EditsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tipline_tip_edits_rejected_total",
			Help: "Total number of edits rejected because the tip was not active",
		}),
		SweepDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tipline_sweep_duration_seconds",
			Help:    "Duration of expiration sweep runs",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SweepFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tipline_sweep_item_failures_total",
			Help: "Total number of individual items the sweep failed to process",
		}),
	}
}

// IncrementTipsCreated records a successful tip creation.
func (m *Metrics) IncrementTipsCreated(tipType string) {
	m.TipsCreated.WithLabelValues(tipType).Inc()
}

// IncrementTipsExpired records one tip expired by the sweep.
func (m *Metrics) IncrementTipsExpired() {
	m.TipsExpired.Inc()
}

// IncrementTipsDeleted records a hard delete.
func (m *Metrics) IncrementTipsDeleted() {
	m.TipsDeleted.Inc()
}

// IncrementEditsRejected records an edit attempt on a non-active tip.
func (m *Metrics) IncrementEditsRejected() {
	m.EditsRejected.Inc()
}

// ObserveSweep records the duration of a sweep run.
// Call with time.Now() at the start of the run.
func (m *Metrics) ObserveSweep(start time.Time) {
	m.SweepDuration.Observe(time.Since(start).Seconds())
}

// IncrementSweepFailures records one item the sweep could not process.
func (m *Metrics) IncrementSweepFailures() {
	m.SweepFailures.Inc()
}
