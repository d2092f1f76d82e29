package provisioning

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "kafka_topology"

// Metrics records bring-up metrics in a registry owned by one run.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	Registry *prometheus.Registry

	phaseDuration     *prometheus.GaugeVec
	phaseResult       *prometheus.CounterVec
	readinessAttempts *prometheus.CounterVec
	readinessWait     *prometheus.HistogramVec
	nodesStarted      prometheus.Gauge
	topicsCreated     *prometheus.CounterVec
}

// NewMetrics creates the bring-up metrics in a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		phaseDuration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: "phase",
				Name:      "duration_seconds",
				Help:      "Duration of each bring-up phase in seconds",
			},
			[]string{"phase"},
		),

		phaseResult: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "phase",
				Name:      "runs_total",
				Help:      "Bring-up phases run, by result",
			},
			[]string{"phase", "result"},
		),

		readinessAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "readiness",
				Name:      "attempts_total",
				Help:      "Readiness checks performed, by check and node",
			},
			[]string{"check", "node"},
		),

		readinessWait: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "readiness",
				Name:      "wait_seconds",
				Help:      "Time until a readiness check succeeded or timed out",
				Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10), // 500ms to ~4min
			},
			[]string{"check", "result"},
		),

		nodesStarted: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: "cluster",
				Name:      "nodes_started",
				Help:      "Number of nodes reported running by the fabric",
			},
		),

		topicsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "cluster",
				Name:      "topics_created_total",
				Help:      "Topic creation commands issued, by result",
			},
			[]string{"result"},
		),
	}

	m.Registry.MustRegister(
		m.phaseDuration,
		m.phaseResult,
		m.readinessAttempts,
		m.readinessWait,
		m.nodesStarted,
		m.topicsCreated,
	)
	return m
}

// ObservePhase records a finished phase.
func (m *Metrics) ObservePhase(phase string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.phaseDuration.WithLabelValues(phase).Set(d.Seconds())
	m.phaseResult.WithLabelValues(phase, result(err)).Inc()
}

// ObserveAttempt records one readiness check.
func (m *Metrics) ObserveAttempt(check, node string) {
	if m == nil {
		return
	}
	m.readinessAttempts.WithLabelValues(check, node).Inc()
}

// ObserveWait records a finished readiness wait.
func (m *Metrics) ObserveWait(check string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.readinessWait.WithLabelValues(check, result(err)).Observe(d.Seconds())
}

// SetNodesStarted records the number of running nodes.
func (m *Metrics) SetNodesStarted(n int) {
	if m == nil {
		return
	}
	m.nodesStarted.Set(float64(n))
}

// ObserveTopic records one topic creation command.
func (m *Metrics) ObserveTopic(err error) {
	if m == nil {
		return
	}
	m.topicsCreated.WithLabelValues(result(err)).Inc()
}

// WriteToFile writes all metrics in the text exposition format.
func (m *Metrics) WriteToFile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

func result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
