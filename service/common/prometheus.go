package common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type PrometheusArgs struct {
	MetricsPort uint `arg:"--metrics-port,env:CALC_METRICS_PORT" default:"0" help:"serve /metrics on this port, 0 disables it"`
	Pprof       bool `arg:"--pprof,env:CALC_PPROF" help:"also serve /debug/pprof on the metrics port"`
}

// MetricsRouter returns the router behind the metrics server.
func MetricsRouter(args PrometheusArgs) *mux.Router {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	if args.Pprof {
		registerPprof(router)
	}
	return router
}

// StartPromMetricsServer serves the metrics router in the background. It
// returns nil when the port is 0.
func StartPromMetricsServer(args PrometheusArgs, logger *zap.Logger) *http.Server {
	if args.MetricsPort == 0 {
		return nil
	}
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", args.MetricsPort),
		Handler: MetricsRouter(args),
	}
	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metric server stopped unexpectedly", zap.Error(err))
		}
	}()
	return server
}
