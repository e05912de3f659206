package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the gate collectors. A nil *Metrics is valid and records
// nothing, which keeps tests free of registry setup.
type Metrics struct {
	verifications *prometheus.CounterVec
	gateLogs      *prometheus.CounterVec
	dropped       prometheus.Counter
	subscribers   prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		verifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gate_verifications_total",
				Help: "Gate verification decisions by reason",
			},
			[]string{"reason", "allowed"},
		),
		gateLogs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gate_logs_recorded_total",
				Help: "Gate logs persisted by type and status",
			},
			[]string{"type", "status"},
		),
		dropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "gate_broadcast_dropped_total",
				Help: "Gate events not delivered to a subscriber whose buffer was full",
			},
		),
		subscribers: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "gate_broadcast_subscribers",
				Help: "Currently connected live event subscribers",
			},
		),
	}
	reg.MustRegister(m.verifications, m.gateLogs, m.dropped, m.subscribers)
	return m
}

// ObserveVerification counts one verification decision.
func (m *Metrics) ObserveVerification(reason string, allowed bool) {
	if m == nil {
		return
	}
	a := "false"
	if allowed {
		a = "true"
	}
	m.verifications.WithLabelValues(reason, a).Inc()
}

// ObserveGateLog counts one persisted gate log.
func (m *Metrics) ObserveGateLog(logType, status string) {
	if m == nil {
		return
	}
	m.gateLogs.WithLabelValues(logType, status).Inc()
}

// BroadcastDropped counts one event lost for one subscriber.
func (m *Metrics) BroadcastDropped() {
	if m == nil {
		return
	}
	m.dropped.Inc()
}

// SetSubscribers records the current subscriber count.
func (m *Metrics) SetSubscribers(n int) {
	if m == nil {
		return
	}
	m.subscribers.Set(float64(n))
}
