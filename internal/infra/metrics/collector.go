// Package metrics collects Prometheus metrics for the bootstrap sequence and moderator actions.
package metrics

import (
	"net/http"
	"time"

	"chatdesk/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "chatdesk"

// Result label values.
const (
	resultSuccess = "success"
	resultFailure = "failure"
)

// Collector implements service.MetricsRecorder on top of Prometheus.
type Collector struct {
	bootstrapSteps   *prometheus.CounterVec
	bootstrapLatency *prometheus.HistogramVec
	phaseTransitions *prometheus.CounterVec
	connected        prometheus.Gauge
	moderation       *prometheus.CounterVec
	auditEvents      *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		bootstrapSteps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bootstrap_steps_total",
			Help:      "Bootstrap steps by step name and result.",
		}, []string{"step", "result"}),
		bootstrapLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bootstrap_step_duration_seconds",
			Help:      "Duration of each bootstrap step.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"step"}),
		phaseTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "screen_phase_transitions_total",
			Help:      "Screen phase transitions by target phase.",
		}, []string{"phase"}),
		connected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chat_connected",
			Help:      "1 while a chat-service session is connected.",
		}),
		moderation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderation_actions_total",
			Help:      "Moderator actions by kind and result.",
		}, []string{"kind", "result"}),
		auditEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_events_total",
			Help:      "Moderation audit events received by kind and delivery.",
		}, []string{"kind", "delivery"}),
	}

	reg.MustRegister(
		c.bootstrapSteps,
		c.bootstrapLatency,
		c.phaseTransitions,
		c.connected,
		c.moderation,
		c.auditEvents,
	)

	return c
}

// RecordBootstrapStep records the outcome and duration of one bootstrap step.
func (c *Collector) RecordBootstrapStep(step string, d time.Duration, err error) {
	c.bootstrapSteps.WithLabelValues(step, result(err)).Inc()
	c.bootstrapLatency.WithLabelValues(step).Observe(d.Seconds())
}

// RecordPhase counts a transition into phase.
func (c *Collector) RecordPhase(phase string) {
	c.phaseTransitions.WithLabelValues(phase).Inc()
}

// RecordConnected sets the connection gauge.
func (c *Collector) RecordConnected(connected bool) {
	if connected {
		c.connected.Set(1)

		return
	}
	c.connected.Set(0)
}

// RecordModerationAction counts a flag or ban attempt.
func (c *Collector) RecordModerationAction(kind string, err error) {
	c.moderation.WithLabelValues(kind, result(err)).Inc()
}

// RecordAuditEvent counts an audit event, labelled first or redelivered.
func (c *Collector) RecordAuditEvent(kind string, duplicate bool) {
	delivery := "first"
	if duplicate {
		delivery = "redelivered"
	}
	c.auditEvents.WithLabelValues(kind, delivery).Inc()
}

func result(err error) string {
	if err != nil {
		return resultFailure
	}

	return resultSuccess
}

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return reg
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		func(reg *prometheus.Registry) service.MetricsRecorder { return NewCollector(reg) },
	),
)
