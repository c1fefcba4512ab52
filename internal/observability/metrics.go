package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments of the planner. A nil *Metrics
// is a valid "disabled" state: every method no-ops.
type Metrics struct {
	Allocations       *prometheus.CounterVec
	Evictions         prometheus.Counter
	ManualSubmissions *prometheus.CounterVec
	AllocationSlots   prometheus.Histogram
	DaysGenerated     prometheus.Counter
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Allocations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_total",
			Help:      "Automatic allocations by outcome.",
		}, []string{"outcome"}),
		Evictions: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evictions_total",
			Help:      "Lower-priority tasks relocated to free capacity.",
		}),
		ManualSubmissions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "manual_submissions_total",
			Help:      "Manual slot submissions by result.",
		}, []string{"result"}),
		AllocationSlots: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "allocation_slots",
			Help:      "Slots assigned per successful allocation.",
			Buckets:   []float64{1, 2, 4, 6, 8, 12, 16, 24},
		}),
		DaysGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calendar_days_generated_total",
			Help:      "Day schedules created by the calendar generator.",
		}),
	}
}

func (m *Metrics) IncAllocation(outcome string) {
	if m == nil {
		return
	}
	m.Allocations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncEvictions(n int) {
	if m == nil {
		return
	}
	m.Evictions.Add(float64(n))
}

func (m *Metrics) IncManualSubmission(result string) {
	if m == nil {
		return
	}
	m.ManualSubmissions.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveAllocationSlots(n int) {
	if m == nil {
		return
	}
	m.AllocationSlots.Observe(float64(n))
}

func (m *Metrics) AddDaysGenerated(n int) {
	if m == nil {
		return
	}
	m.DaysGenerated.Add(float64(n))
}

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
