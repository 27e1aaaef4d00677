package irc

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is an optional set of prometheus collectors a caller can wire
// up around ParseWithOptions to observe parse throughput and failure
// rate. Nothing in the core registers these automatically — the parser
// itself stays free of any global registry dependency.
type Metrics struct {
	ParsedTotal      prometheus.Counter
	ParseErrorsTotal prometheus.Counter
	LineLength       prometheus.Histogram
}

// NewMetrics builds a Metrics set and registers it against reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ParsedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tmi",
			Subsystem: "irc",
			Name:      "parsed_total",
			Help:      "Lines successfully parsed into an IrcMessage.",
		}),
		ParseErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tmi",
			Subsystem: "irc",
			Name:      "parse_errors_total",
			Help:      "Lines that failed structural parsing (unterminated prefix, empty command).",
		}),
		LineLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tmi",
			Subsystem: "irc",
			Name:      "line_length_bytes",
			Help:      "Length in bytes of lines passed to the parser.",
			Buckets:   prometheus.ExponentialBuckets(32, 2, 10),
		}),
	}

	for _, c := range []prometheus.Collector{m.ParsedTotal, m.ParseErrorsTotal, m.LineLength} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records the outcome of a single parse call. Call sites own the
// decision to pay for this — it is not wired into Parse/ParseWithOptions
// so the core's hot path stays free of metrics overhead.
func (m *Metrics) Observe(line string, ok bool) {
	if m == nil {
		return
	}
	m.LineLength.Observe(float64(len(line)))
	if ok {
		m.ParsedTotal.Inc()
	} else {
		m.ParseErrorsTotal.Inc()
	}
}
