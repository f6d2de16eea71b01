package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type RegistryParams struct {
	// Version is exposed as the version label of gymcoach_build_info.
	Version string
	// Extra collectors, e.g. the pgx pool stats.
	Extra []prometheus.Collector
}

// SetupPrometheus builds the registry served on the metrics listener.
func SetupPrometheus(params RegistryParams) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	version := params.Version
	if version == "" {
		version = "unknown"
	}
	buildInfo := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "gymcoach_build_info",
		Help:        "Always 1, labeled with the running version.",
		ConstLabels: prometheus.Labels{"version": version},
	})
	buildInfo.Set(1)
	promRegistry.MustRegister(buildInfo)

	promRegistry.MustRegister(params.Extra...)
	return promRegistry
}
