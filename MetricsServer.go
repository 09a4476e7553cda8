package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/VictoriaMetrics/metrics"
	"io"
	"net"
	"net/http"
	"sync"
	"time"
)

const metricsShutdownTimeout = time.Second * 5

// MetricsServer exposes the process metrics in Prometheus text format on /metrics.
// An empty listen address disables it.
type MetricsServer struct {
	out      io.Writer
	listen   string
	listener net.Listener
}

func (server *MetricsServer) Execute(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	if server.listen == "" {
		return
	}

	var err error
	if server.listener == nil {
		server.listener, err = net.Listen("tcp", server.listen)
		if err != nil {
			_, _ = fmt.Fprintf(server.out, "Metrics server error: %v\n", err)
			return
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		metrics.WritePrometheus(w, true)
	})

	httpServer := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: time.Second * 5,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	_, _ = fmt.Fprintf(server.out, "Metrics server listen on %s\n", server.listener.Addr().String())

	err = httpServer.Serve(server.listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		_, _ = fmt.Fprintf(server.out, "Metrics server error: %v\n", err)
	}
}
