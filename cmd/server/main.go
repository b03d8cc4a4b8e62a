package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "homestead/internal/adapter/http"
	"homestead/internal/adapter/metrics"
	metricsinmem "homestead/internal/adapter/metrics/inmemory"
	metricsprom "homestead/internal/adapter/metrics/prom"
	textrender "homestead/internal/adapter/render/text"
	"homestead/internal/adapter/world/terrain"
	"homestead/internal/app/frame"
	"homestead/internal/app/inventory"
	"homestead/internal/app/observe"
	"homestead/internal/app/placement"
	"homestead/internal/app/ports"
	"homestead/internal/config"
	"homestead/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults to $"+config.EnvPath+")")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		hlog.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		hlog.Fatalf("homestead: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	w, err := buildWorld(cfg)
	if err != nil {
		return err
	}

	loop := frame.New(w, buildRenderer(cfg), frame.Config{
		TileSize:  cfg.Frame.TileSize,
		Interval:  cfg.Interval(),
		QueueSize: cfg.Frame.QueueSize,
	})

	kpiRecorder := metricsinmem.NewRecorder()
	promRecorder := metricsprom.NewRecorder(nil)
	recorders := metrics.Fanout{kpiRecorder, promRecorder}

	h := httpadapter.Handler{
		ObserveUC: observe.UseCase{Loop: loop},
		PlacementUC: placement.UseCase{
			Loop:    loop,
			Policy:  placement.DefaultTerrainPolicy(),
			Metrics: recorders,
		},
		InventoryUC:  inventory.UseCase{Bag: inventory.NewBag(), Metrics: recorders},
		KPI:          kpiRecorder,
		AllowOrigins: cfg.HTTP.AllowOrigins,
	}

	s := server.Default(server.WithHostPorts(cfg.HTTP.Addr))
	h.RegisterRoutes(s)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	if cfg.Metrics.Addr != "" {
		g.Go(func() error {
			return promRecorder.Serve(gctx, cfg.Metrics.Addr)
		})
	}
	g.Go(func() error {
		hlog.Infof("homestead listening on %s (world %dx%d, tile %dpx)", cfg.HTTP.Addr, cfg.World.Size, cfg.World.Size, cfg.Frame.TileSize)
		return s.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func buildWorld(cfg config.Config) (*world.World, error) {
	w, err := world.New(cfg.World.Size)
	if err != nil {
		return nil, err
	}
	if err := (terrain.Generator{Seed: cfg.World.Seed}).Paint(w); err != nil {
		return nil, err
	}
	return w, nil
}

func buildRenderer(cfg config.Config) ports.Renderer {
	if !cfg.Render.Enabled {
		return nil
	}
	return textrender.New(os.Stdout, cfg.Render.Every)
}
