package prom

import (
	"context"
	"errors"
	"net/http"
	"time"

	"homestead/internal/domain/item"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "homestead"

// Recorder exports placement and item counters to Prometheus.
type Recorder struct {
	registry *prometheus.Registry
	placed   prometheus.Counter
	removed  prometheus.Counter
	rejected *prometheus.CounterVec
	created  *prometheus.CounterVec
}

func NewRecorder(registry *prometheus.Registry) *Recorder {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	r := &Recorder{
		registry: registry,
		placed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "world",
			Name:      "structures_placed_total",
			Help:      "Structures accepted into the world.",
		}),
		removed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "world",
			Name:      "structures_removed_total",
			Help:      "Structures removed from the world.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "world",
			Name:      "placements_rejected_total",
			Help:      "Placement requests rejected, by reason.",
		}, []string{"reason"}),
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "items",
			Name:      "created_total",
			Help:      "Items built by the item factory, by type.",
		}, []string{"type"}),
	}
	registry.MustRegister(r.placed, r.removed, r.rejected, r.created)
	return r
}

func (r *Recorder) RecordPlaced() {
	r.placed.Inc()
}

func (r *Recorder) RecordRemoved() {
	r.removed.Inc()
}

func (r *Recorder) RecordRejected(reason string) {
	r.rejected.WithLabelValues(reason).Inc()
}

func (r *Recorder) RecordCreated(t item.Type, count int) {
	if count <= 0 {
		return
	}
	r.created.WithLabelValues(t.String()).Add(float64(count))
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (r *Recorder) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		hlog.Infof("prometheus metrics listening on %s/metrics", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
