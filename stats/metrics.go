package stats

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/omniscale/pbfserve/parser/pbf"
)

// Metrics are the Prometheus collectors of the service. All methods accept
// a nil *Metrics.
type Metrics struct {
	Requests     *prometheus.CounterVec
	Duration     *prometheus.HistogramVec
	ScanDuration *prometheus.HistogramVec
	ScanElements *prometheus.CounterVec
	ScanErrors   *prometheus.CounterVec
	ActiveScans  prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pbfserve_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "code"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pbfserve_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"route"},
		),
		ScanDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pbfserve_scan_duration_seconds",
				Help:    "Duration of full file scans in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"query"},
		),
		ScanElements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pbfserve_scan_elements_total",
				Help: "Total number of raw elements read by scans",
			},
			[]string{"kind"},
		),
		ScanErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pbfserve_scan_errors_total",
				Help: "Total number of failed scans",
			},
			[]string{"query", "error"},
		),
		ActiveScans: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "pbfserve_active_scans",
				Help: "Number of scans in progress",
			},
		),
	}
}

func (m *Metrics) ScanStarted() {
	if m == nil {
		return
	}
	m.ActiveScans.Inc()
}

// ScanFinished records a finished scan. errType is empty for successful
// scans.
func (m *Metrics) ScanFinished(query string, c *ScanCounter, errType string) {
	if m == nil {
		return
	}
	m.ActiveScans.Dec()
	m.ScanDuration.WithLabelValues(query).Observe(c.Duration().Seconds())
	m.ScanElements.WithLabelValues(pbf.KindNode.String()).Add(float64(c.Nodes))
	m.ScanElements.WithLabelValues(pbf.KindDenseNode.String()).Add(float64(c.DenseNodes))
	m.ScanElements.WithLabelValues(pbf.KindWay.String()).Add(float64(c.Ways))
	m.ScanElements.WithLabelValues(pbf.KindRelation.String()).Add(float64(c.Relations))
	m.ScanElements.WithLabelValues(pbf.KindOther.String()).Add(float64(c.Others))
	if errType != "" {
		m.ScanErrors.WithLabelValues(query, errType).Inc()
	}
}

func (m *Metrics) Request(route string, code int, seconds float64) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.Duration.WithLabelValues(route).Observe(seconds)
}
