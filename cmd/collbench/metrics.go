package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// benchRegistry holds the run's gauges on a private registry so tests can
// build several without colliding on the default one.
type benchRegistry struct {
	reg         *prometheus.Registry
	length      *prometheus.GaugeVec
	capacity    *prometheus.GaugeVec
	utilization *prometheus.GaugeVec
}

func newRegistry() *benchRegistry {
	r := &benchRegistry{
		reg: prometheus.NewRegistry(),
		length: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "coll_bench_len",
			Help: "Live entries after the workload",
		}, []string{"container"}),
		capacity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "coll_bench_capacity",
			Help: "Allocated slots (buffers) or buckets (tables) after the workload",
		}, []string{"container"}),
		utilization: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "coll_bench_utilization",
			Help: "Live entries per allocated slot or bucket (0.0-1.0 for buffers)",
		}, []string{"container"}),
	}
	r.reg.MustRegister(r.length, r.capacity, r.utilization)
	return r
}

func (r *benchRegistry) publish(rep report) {
	r.length.WithLabelValues(rep.Container).Set(float64(rep.Len))
	switch {
	case rep.Buffer != nil:
		r.capacity.WithLabelValues(rep.Container).Set(float64(rep.Buffer.Capacity))
		r.utilization.WithLabelValues(rep.Container).Set(rep.Buffer.Utilization)
	case rep.Table != nil:
		r.capacity.WithLabelValues(rep.Container).Set(float64(rep.Table.Buckets))
		r.utilization.WithLabelValues(rep.Container).Set(rep.Table.LoadFactor)
	}
}

func (r *benchRegistry) handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// serve exposes /metrics on addr until ctx is done or the process is
// interrupted.
func (r *benchRegistry) serve(ctx context.Context, addr string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.Handle("/metrics", r.handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving metrics", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
