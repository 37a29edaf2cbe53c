package metrics_fx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"

	"menuboard/internal/config"
	"menuboard/pkg/metrics"
)

var Module = fx.Provide(
	provideRegistry,
	provideMetrics,
)

func provideRegistry() (prometheus.Registerer, prometheus.Gatherer) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg, reg
}

func provideMetrics(reg prometheus.Registerer, cfg *config.Config) *metrics.Metrics {
	return metrics.NewMetrics(reg, cfg.ServiceName)
}
