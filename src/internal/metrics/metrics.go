package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder collects per-instruction outcome metrics.
type Recorder struct {
	registry   *prometheus.Registry
	processed  *prometheus.CounterVec
	durations  prometheus.Histogram
	journalErr prometheus.Counter
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Recorder{
		registry: registry,
		processed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "payment_instructions_total",
			Help: "Processed payment instructions by outcome.",
		}, []string{"status", "status_code"}),
		durations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "payment_instruction_duration_seconds",
			Help:    "Time spent parsing and validating a payment instruction.",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
		}),
		journalErr: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "payment_instruction_journal_errors_total",
			Help: "Instruction journal writes that failed.",
		}),
	}
	registry.MustRegister(r.processed, r.durations, r.journalErr)

	return r
}

// ObserveInstruction is safe to call on a nil Recorder.
func (r *Recorder) ObserveInstruction(status, statusCode string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.processed.WithLabelValues(status, statusCode).Inc()
	r.durations.Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveJournalError() {
	if r == nil {
		return
	}
	r.journalErr.Inc()
}

// Handler exposes the recorder's registry in Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
