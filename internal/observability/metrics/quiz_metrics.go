package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// QuizMetrics tracks match quiz sessions.
type QuizMetrics struct {
	started   prometheus.Counter
	completed *prometheus.CounterVec
	restarted prometheus.Counter
}

// NewQuizMetrics registers quiz counters on registerer, falling back to the
// default registerer when nil.
func NewQuizMetrics(registerer prometheus.Registerer, cfg Config) *QuizMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "armora-quote"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	started := prometheus.NewCounter(prometheus.CounterOpts{
		Name:        "armora_quiz_sessions_started_total",
		Help:        "Match quiz sessions started.",
		ConstLabels: constLabels,
	})
	completed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "armora_quiz_sessions_completed_total",
		Help:        "Match quiz sessions scored, by winning tier.",
		ConstLabels: constLabels,
	}, []string{"tier"})
	restarted := prometheus.NewCounter(prometheus.CounterOpts{
		Name:        "armora_quiz_sessions_restarted_total",
		Help:        "Match quiz sessions reset to the first question.",
		ConstLabels: constLabels,
	})

	registerer.MustRegister(started, completed, restarted)

	return &QuizMetrics{
		started:   started,
		completed: completed,
		restarted: restarted,
	}
}

// ProvideQuizMetrics registers quiz metrics on the default registerer.
func ProvideQuizMetrics(cfg Config) *QuizMetrics {
	return NewQuizMetrics(prometheus.DefaultRegisterer, cfg)
}

func (m *QuizMetrics) Started() {
	if m == nil {
		return
	}
	m.started.Inc()
}

func (m *QuizMetrics) Completed(tierID string) {
	if m == nil {
		return
	}
	m.completed.WithLabelValues(strings.TrimSpace(tierID)).Inc()
}

func (m *QuizMetrics) Restarted() {
	if m == nil {
		return
	}
	m.restarted.Inc()
}
