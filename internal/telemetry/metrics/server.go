package metrics

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewServer returns a server exposing reg under /metrics. It is not started.
func NewServer(addr string, reg *prometheus.Registry, middlewares ...mux.MiddlewareFunc) *http.Server {
	metricsRouter := mux.NewRouter()
	metricsRouter.Use(middlewares...)
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		reg,
		promhttp.HandlerOpts{},
	)).Methods(http.MethodGet)

	return &http.Server{
		Addr:              addr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
