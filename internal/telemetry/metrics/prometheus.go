package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus returns a registry with the build, runtime and process collectors,
// plus a <namespace>_info gauge fixed at 1 that carries the given labels, e.g. the
// environment and the storage backend of the running instance.
func SetupPrometheus(namespace string, info prometheus.Labels) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
	)

	infoGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "info",
		Help:        "Static information about the running instance.",
		ConstLabels: info,
	})
	infoGauge.Set(1)
	promRegistry.MustRegister(infoGauge)

	return promRegistry
}
