package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "artbot"

// Metrics exposes Prometheus collectors that report bot activity.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	commands          *prometheus.CounterVec
	commandDuration   *prometheus.HistogramVec
	refreshes         *prometheus.CounterVec
	directoryProjects prometheus.Gauge
	routineRuns       *prometheus.CounterVec
	announcements     prometheus.Counter
	inflight          prometheus.Gauge
}

// MustNewMetrics registers the collectors with reg and panics on a registration
// error. Tests should pass a fresh prometheus.NewRegistry().
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "bot",
				Name:      "commands_total",
				Help:      "Commands handled, by intent and outcome.",
			},
			[]string{"intent", "outcome"},
		),
		commandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "bot",
				Name:      "command_duration_seconds",
				Help:      "Time spent handling a command.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"intent"},
		),
		refreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "directory",
				Name:      "refreshes_total",
				Help:      "Directory rebuilds, by result.",
			},
			[]string{"result"},
		),
		directoryProjects: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "directory",
				Name:      "projects",
				Help:      "Projects in the published snapshot.",
			},
		),
		routineRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "routine",
				Name:      "runs_total",
				Help:      "Scheduled routine runs, by routine and result.",
			},
			[]string{"routine", "result"},
		),
		announcements: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "routine",
				Name:      "birthdays_announced_total",
				Help:      "Project birthdays announced.",
			},
		),
		inflight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "bot",
				Name:      "commands_inflight",
				Help:      "Commands currently being handled.",
			},
		),
	}

	reg.MustRegister(
		m.commands,
		m.commandDuration,
		m.refreshes,
		m.directoryProjects,
		m.routineRuns,
		m.announcements,
		m.inflight,
	)

	return m
}

// ObserveCommand records a handled command
func (m *Metrics) ObserveCommand(intent, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(intent, outcome).Inc()
	m.commandDuration.WithLabelValues(intent).Observe(duration.Seconds())
}

// CommandStarted increments the in-flight gauge; call the returned func when done
func (m *Metrics) CommandStarted() func() {
	if m == nil {
		return func() {}
	}
	m.inflight.Inc()
	return m.inflight.Dec
}

// ObserveRefresh records a directory rebuild; projects is ignored on failure
func (m *Metrics) ObserveRefresh(err error, projects int) {
	if m == nil {
		return
	}
	if err != nil {
		m.refreshes.WithLabelValues("error").Inc()
		return
	}
	m.refreshes.WithLabelValues("ok").Inc()
	m.directoryProjects.Set(float64(projects))
}

// ObserveRoutine records one run of a scheduled routine
func (m *Metrics) ObserveRoutine(routine string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.routineRuns.WithLabelValues(routine, result).Inc()
}

// BirthdayAnnounced counts an announced birthday
func (m *Metrics) BirthdayAnnounced() {
	if m == nil {
		return
	}
	m.announcements.Inc()
}
