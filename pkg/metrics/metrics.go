// Package metrics, Prometheus collector'larını tek bir yerde toplar.
//
// Collector'lar global registry yerine verilen Registerer'a kaydedilir;
// testler kendi prometheus.NewRegistry() örneğini kullanabilir.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "directory"

// Metrics, HTTP ve sunucu listesi metrikleri.
// nil *Metrics üzerinde tüm Observe* metotları no-op'tur.
type Metrics struct {
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	listResult prometheus.Histogram
}

// New, collector'ları oluşturup reg'e kaydeder.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		listResult: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "servers",
			Name:      "list_result_size",
			Help:      "Number of servers returned by the list endpoint.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
	}

	reg.MustRegister(m.requests, m.duration, m.listResult)
	return m
}

// ObserveRequest, tamamlanan bir HTTP isteğini kaydeder.
func (m *Metrics) ObserveRequest(route string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveListSize, liste endpoint'inin döndürdüğü kayıt sayısını kaydeder.
func (m *Metrics) ObserveListSize(n int) {
	if m == nil {
		return
	}
	m.listResult.Observe(float64(n))
}

// Handler, /metrics endpoint'i için exposition handler'ı döner.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
