package ports

type Observability interface {
	LogDebug(msg string, fields ...Field)
	LogInfo(msg string, fields ...Field)
	LogError(msg string, err error, fields ...Field)
	LogCritical(msg string, err error, fields ...Field)

	IncCounter(name string, v float64)
	ObserveLatency(name string, seconds float64)

	SetGauge(name string, v float64)

	// RecordRejected notes an acquisition the pipeline discarded before
	// commit (filter reject, coherence failure, fetch error).
	RecordRejected(transID uint64, reason string)
}

type Field struct {
	Key   string
	Value any
}
