package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/slingshotlabs/go-slingshot/log"
)

// StartMetricsServer starts an http server that exposes the registered
// prometheus collectors on /metrics.
func StartMetricsServer(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%v", port), mux)
		log.With().Warning("metrics server stopped", log.Err(err))
	}()
}
