package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/veglia/veglia/internal/alerts"
	"github.com/veglia/veglia/internal/api"
	"github.com/veglia/veglia/internal/auth"
	"github.com/veglia/veglia/internal/config"
	"github.com/veglia/veglia/internal/monitor"
	"github.com/veglia/veglia/internal/notify"
	"github.com/veglia/veglia/internal/source"
	"github.com/veglia/veglia/internal/ws"
)

// overviewInterval is how often the WebSocket hub re-broadcasts the overview
// to connected dashboards.
const overviewInterval = 5 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	listen := flag.Int("listen", 0, "HTTP port; overrides the config file when set")
	uiDir := flag.String("ui-dir", "", "serve the dashboard static files from this directory (e.g. ui/dist); overrides the config file when set")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	slog.Info("vegliad starting", "config", *configPath)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})))
	if *listen != 0 {
		cfg.Server.HTTPPort = *listen
	}
	if *uiDir != "" {
		cfg.Server.UIDir = *uiDir
	}

	slog.Info("config loaded",
		"http_port", cfg.Server.HTTPPort,
		"source", cfg.Source.Type,
		"interval", cfg.Monitoring.Interval,
		"auth_mode", cfg.Server.Auth.Mode,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	src, err := source.New(cfg.Source)
	if err != nil {
		slog.Error("failed to build metrics source", "err", err)
		os.Exit(1)
	}

	st := alerts.NewStore()
	mon := monitor.New(src, st, cfg.Monitoring)

	// WebSocket hub: overview broadcasts plus immediate alert events.
	hub := ws.New(mon, st, overviewInterval)
	go hub.Run(ctx)

	// Notification chain: log + dashboards + optional webhooks, decoupled
	// from the tick path by an async buffer.
	sinks := notify.Multi{notify.Log{}, hub}
	if len(cfg.Notify.Webhooks) > 0 {
		sinks = append(sinks, notify.NewWebhook(cfg.Notify.Webhooks))
		slog.Info("webhook notifications enabled", "targets", len(cfg.Notify.Webhooks))
	}
	async := notify.NewAsync(sinks, cfg.Notify.BufferSize)
	go async.Run(ctx)
	mon.SetNotifier(async)

	if cfg.Monitoring.Enabled {
		mon.Start()
	}

	// Re-apply the monitoring section when the config file changes on disk.
	// A fresh install may run without a file at all; nothing to watch then.
	if _, err := os.Stat(*configPath); err == nil {
		path := *configPath
		go func() {
			err := config.Watch(ctx, path, cfg, func(updated *config.Config) {
				if _, err := mon.UpdateConfig(updated.Monitoring.AsPatch()); err != nil {
					slog.Warn("reloaded monitoring config rejected, keeping previous", "err", err)
					return
				}
				slog.Info("monitoring config reloaded", "interval", updated.Monitoring.Interval)
			})
			if err != nil {
				slog.Error("config watcher stopped", "err", err)
			}
		}()
	}

	guard := auth.Middleware(
		cfg.Server.Auth.Mode,
		cfg.Server.Auth.EffectiveHeader(),
		cfg.Server.Auth.Key(),
	)

	// Combined HTTP server: REST API + WebSocket hub + self-metrics.
	httpMux := http.NewServeMux()
	httpMux.Handle("/api/", guard(api.New(mon, st)))
	httpMux.Handle("/ws/stream", guard(hub))
	httpMux.Handle("/metrics", promhttp.Handler())

	// Optional: serve the pre-built dashboard from a local directory.
	// The "/" catch-all serves index.html for any unknown path (SPA routing).
	if dir := cfg.Server.UIDir; dir != "" {
		fs := http.FileServer(http.Dir(dir))
		httpMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			// SPA fallback: if the requested file doesn't exist, serve index.html.
			path := dir + r.URL.Path
			if _, err := os.Stat(path); os.IsNotExist(err) {
				http.ServeFile(w, r, dir+"/index.html")
				return
			}
			fs.ServeHTTP(w, r)
		})
		slog.Info("serving UI static files", "dir", dir)
	}

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: httpMux,
	}
	go func() {
		slog.Info("HTTP server listening", "port", cfg.Server.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server stopped", "err", err)
		}
	}()

	<-ctx.Done()
	slog.Info("vegliad shutting down")
	mon.Stop()
	httpSrv.Shutdown(context.Background()) //nolint:errcheck
}
