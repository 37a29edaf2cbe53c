package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups every collector the service exports. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	ServiceName string

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	statusCategory  *prometheus.CounterVec
	menuSaves       *prometheus.CounterVec
	imageIngests    *prometheus.CounterVec
	announcements   *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ServiceName: serviceName,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path", "status"}),
		statusCategory: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_status_category_total",
			Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
		}, []string{"service", "category"}),
		menuSaves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "menuboard_menu_entries_saved_total",
			Help: "Menu slot saves by outcome",
		}, []string{"outcome"}),
		imageIngests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "menuboard_images_ingested_total",
			Help: "Image uploads by result",
		}, []string{"result"}),
		announcements: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "menuboard_announcements_total",
			Help: "Announcement lifecycle events",
		}, []string{"event"}),
	}
}

func (m *Metrics) MenuSave(outcome string) {
	if m == nil {
		return
	}
	m.menuSaves.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ImageIngest(result string) {
	if m == nil {
		return
	}
	m.imageIngests.WithLabelValues(result).Inc()
}

func (m *Metrics) Announcement(event string) {
	if m == nil {
		return
	}
	m.announcements.WithLabelValues(event).Inc()
}

func statusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500:
		return "5xx"
	}
	return ""
}

// Middleware records request count, latency and status category for every
// route, labelled by the route template rather than the raw path.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		if m == nil {
			return
		}
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		statusStr := strconv.Itoa(status)

		m.requests.WithLabelValues(m.ServiceName, c.Request.Method, path, statusStr).Inc()
		m.requestDuration.WithLabelValues(m.ServiceName, c.Request.Method, path, statusStr).
			Observe(time.Since(start).Seconds())
		if category := statusCategory(status); category != "" {
			m.statusCategory.WithLabelValues(m.ServiceName, category).Inc()
		}
	}
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
