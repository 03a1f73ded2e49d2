package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics метрики проверки PIN. Сами PIN и даты в метки не попадают.
type Metrics struct {
	// Итоговые оценки по strength
	Verdicts *prometheus.CounterVec

	// Сработавшие правила по коду
	Reasons *prometheus.CounterVec

	// PIN, отклонённые валидацией, по коду ошибки
	Rejected *prometheus.CounterVec

	ClassifyLatency prometheus.Histogram
}

// New регистрирует метрики в reg. Для /metrics это prometheus.DefaultRegisterer,
// в тестах отдельный prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Verdicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mpin_check_verdicts_total",
			Help: "Total PIN verdicts by strength",
		}, []string{"strength"}),

		Reasons: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mpin_check_reasons_total",
			Help: "Total triggered weakness reasons by code",
		}, []string{"reason"}),

		Rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mpin_check_rejected_total",
			Help: "Total PINs rejected by input validation by error code",
		}, []string{"code"}),

		ClassifyLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "mpin_check_classify_duration_seconds",
			Help:    "Duration of PIN classification including date candidate derivation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

func (m *Metrics) ObserveVerdict(strength string, reasons []string) {
	if m == nil {
		return
	}

	m.Verdicts.WithLabelValues(strength).Inc()

	for _, reason := range reasons {
		m.Reasons.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) IncrementRejected(code string) {
	if m != nil {
		m.Rejected.WithLabelValues(code).Inc()
	}
}

func (m *Metrics) ObserveClassifyLatency(d time.Duration) {
	if m != nil {
		m.ClassifyLatency.Observe(d.Seconds())
	}
}
