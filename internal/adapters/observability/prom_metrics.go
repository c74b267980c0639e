package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/tektronix/TekHSI/internal/ports"
)

// PromObs is the default Observability backend: Prometheus metrics plus
// logrus structured logging.
type PromObs struct {
	logger *log.Entry

	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
	histos   map[string]prometheus.Observer
	rejected *prometheus.CounterVec
}

// NewPromObs registers the tekhsi metric set on its own registry so
// repeated sessions in one process do not collide, and returns the backend
// together with the registry for a promhttp handler.
func NewPromObs() (*PromObs, *prometheus.Registry) {
	committed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tekhsi_acqs_committed_total",
		Help: "Acquisition bundles accepted and committed.",
	})
	transferBytes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tekhsi_transfer_bytes_total",
		Help: "Raw sample bytes pulled from the instrument.",
	})
	keepaliveFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tekhsi_keepalive_failures_total",
		Help: "Keep-alive RPCs the instrument failed to answer.",
	})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tekhsi_acqs_rejected_total",
		Help: "Acquisitions discarded before commit, by reason.",
	}, []string{"reason"})
	sessionUp := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tekhsi_session_up",
		Help: "1 while the instrument session is connected.",
	})
	recordLength := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tekhsi_record_length",
		Help: "Record length of the most recent committed acquisition.",
	})
	transferLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tekhsi_transfer_seconds",
		Help:    "Time to stream one symbol's header and chunks.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(committed, transferBytes, keepaliveFailures, rejected,
		sessionUp, recordLength, transferLatency)

	return &PromObs{
		logger: log.WithField("component", "tekhsi"),
		counters: map[string]prometheus.Counter{
			"tekhsi_acqs_committed_total":     committed,
			"tekhsi_transfer_bytes_total":     transferBytes,
			"tekhsi_keepalive_failures_total": keepaliveFailures,
		},
		gauges: map[string]prometheus.Gauge{
			"tekhsi_session_up":    sessionUp,
			"tekhsi_record_length": recordLength,
		},
		histos: map[string]prometheus.Observer{
			"tekhsi_transfer_seconds": transferLatency,
		},
		rejected: rejected,
	}, registry
}

func (p *PromObs) LogDebug(msg string, fields ...ports.Field) {
	p.logger.WithFields(toLogrus(fields)).Debug(msg)
}

func (p *PromObs) LogInfo(msg string, fields ...ports.Field) {
	p.logger.WithFields(toLogrus(fields)).Info(msg)
}

func (p *PromObs) LogError(msg string, err error, fields ...ports.Field) {
	entry := p.logger.WithFields(toLogrus(fields))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(msg)
}

func (p *PromObs) LogCritical(msg string, err error, fields ...ports.Field) {
	entry := p.logger.WithFields(toLogrus(fields))
	if err != nil {
		entry = entry.WithError(err)
	}
	// Fatal would exit the process; a broken session is survivable.
	entry.Error(msg)
}

func (p *PromObs) IncCounter(name string, v float64) {
	if c, ok := p.counters[name]; ok {
		c.Add(v)
	}
}

func (p *PromObs) ObserveLatency(name string, seconds float64) {
	if h, ok := p.histos[name]; ok {
		h.Observe(seconds)
	}
}

func (p *PromObs) SetGauge(name string, v float64) {
	if g, ok := p.gauges[name]; ok {
		g.Set(v)
	}
}

func (p *PromObs) RecordRejected(transID uint64, reason string) {
	p.rejected.WithLabelValues(reason).Inc()
	p.logger.WithFields(log.Fields{"trans_id": transID, "reason": reason}).
		Debug("acquisition rejected")
}

func toLogrus(fields []ports.Field) log.Fields {
	if len(fields) == 0 {
		return nil
	}
	out := make(log.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}

var _ ports.Observability = (*PromObs)(nil)
