package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"mpin_check/internal/config"
	service "mpin_check/internal/domain/service/pin"
	"mpin_check/internal/metrics"
	"mpin_check/internal/server"
	"mpin_check/internal/transport/bot"
	"mpin_check/internal/transport/bot/handler"
	"mpin_check/pkg/application/modules"
	"mpin_check/pkg/contextx"
	"mpin_check/pkg/logx"
	"mpin_check/pkg/probe"
)

var ErrSelfTestFailed = errors.New("self-test failed")

// Run поднимает HTTP API, probe- и prometheus-серверы и (опционально)
// Telegram-бота. Возвращается после отмены ctx или падения любого из них.
func Run(ctx context.Context, log *slog.Logger, level *slog.LevelVar) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	level.Set(cfg.App.LogLevel)

	log = log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	ctx = contextx.WithLogger(ctx, log)

	// 2. Service
	svc := service.NewPinService(metrics.New(prometheus.DefaultRegisterer)).
		WithCandidateCache(cfg.Cache.CandidateTTL, cfg.Cache.CleanupInterval)

	// 3. Self-test: провал не роняет процесс, но держит /ready в 503
	report := svc.SelfTest(ctx)

	if !report.OK() {
		for _, line := range report.Lines {
			log.Warn(line)
		}
	}

	readiness := func(context.Context) error {
		if !report.OK() {
			return fmt.Errorf("%w: %d of %d", ErrSelfTestFailed, report.Failed, report.Passed+report.Failed)
		}

		return nil
	}

	// 4. HTTP API
	router := server.NewRouter(
		server.NewServer(server.NewPinServer(svc)),
		logx.NewSensitiveDataMasker(),
		cfg.HTTP.LogFieldMaxLen,
	)

	g, ctx := errgroup.WithContext(ctx)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks:        []probe.Check{readiness},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      prometheus.DefaultGatherer,
	}.Run(ctx, g)

	// 5. Telegram bot
	if cfg.Bot.Enabled {
		telegramBot, err := bot.New(cfg.Bot, handler.New(svc))
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}

		g.Go(func() error {
			if err := telegramBot.Run(ctx); err != nil {
				return fmt.Errorf("telegramBot.Run: %w", err)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}
