package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/collectors/version"
)

var (
	runningDesc = prometheus.NewDesc(
		"lapse_running",
		"Whether the stopwatch is currently running (0 or 1)",
		nil, nil,
	)
	elapsedDesc = prometheus.NewDesc(
		"lapse_elapsed_seconds",
		"Total elapsed time on the stopwatch in seconds",
		nil, nil,
	)
	lapsDesc = prometheus.NewDesc(
		"lapse_laps_total",
		"Number of laps recorded since the last reset",
		nil, nil,
	)
)

// collector reads the stopwatch at scrape time under the server lock
type collector struct {
	server *Server
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- runningDesc
	ch <- elapsedDesc
	ch <- lapsDesc
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	c.server.mu.Lock()
	running := 0.0
	if c.server.sw.Running() {
		running = 1.0
	}
	elapsed := c.server.sw.Elapsed().Seconds()
	laps := float64(c.server.sw.LapCount())
	c.server.mu.Unlock()

	ch <- prometheus.MustNewConstMetric(runningDesc, prometheus.GaugeValue, running)
	ch <- prometheus.MustNewConstMetric(elapsedDesc, prometheus.GaugeValue, elapsed)
	ch <- prometheus.MustNewConstMetric(lapsDesc, prometheus.GaugeValue, laps)
}

// metricsHandler builds a /metrics handler on a dedicated registry so
// only stopwatch and build-info series are exported
func (s *Server) metricsHandler() http.Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(&collector{server: s})
	registry.MustRegister(version.NewCollector("lapse"))
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
