package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"daybook/internal/config"
	"daybook/internal/dialog"
	"daybook/internal/handler"
	"daybook/internal/metrics"
	"daybook/internal/middleware"
	"daybook/internal/repository/memory"
	"daybook/internal/service"
	"daybook/internal/session"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	tele "gopkg.in/telebot.v3"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if cfg.Debug() {
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	logger.Info("Starting Daybook Bot",
		zap.String("timezone", cfg.Location.String()),
		zap.Duration("dialog_timeout", cfg.Dialog.Timeout),
	)

	// Initialize repositories
	scheduleRepo := memory.NewScheduleRepo()
	eventRepo := memory.NewEventRepo()
	questionRepo := memory.NewQuestionRepo()
	usageRepo := memory.NewUsageRepo()
	sweetsRepo := memory.NewTextLogRepo()
	badWordsRepo := memory.NewTextLogRepo()

	// Initialize services
	sessions := session.NewStore(time.Now)
	services := dialog.Services{
		Schedule:     service.NewScheduleService(scheduleRepo),
		Events:       service.NewEventService(eventRepo),
		Questions:    service.NewQuestionService(questionRepo),
		Dependencies: service.NewDependencyService(usageRepo, sweetsRepo, badWordsRepo, time.Now, cfg.Location),
	}
	janitor := service.NewSessionJanitor(sessions, cfg.Dialog.Timeout, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry, sessions.Len)

	engine, err := dialog.NewEngine(sessions, services, m, logger)
	if err != nil {
		logger.Fatal("Failed to build dialog engine", zap.Error(err))
	}

	// Initialize Telegram bot
	bot, err := tele.NewBot(botSettings(cfg, logger))
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	bot.Use(middleware.Logger(logger), middleware.Serialize())

	h := handler.NewHandler(bot, engine, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Bot started successfully")
		bot.Start()
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received, stopping bot...")
		bot.Stop()
		return nil
	})

	g.Go(func() error {
		janitor.Run(ctx, cfg.Dialog.SweepInterval)
		return nil
	})

	if cfg.MetricsAddr != "" {
		runMetricsServer(ctx, g, cfg.MetricsAddr, registry, logger)
	}

	if err := g.Wait(); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
		return
	}
	logger.Info("Bot stopped gracefully")
}

// botSettings configures the poller. Updates are processed one at a time in
// arrival order so that every dialog step sees the session left by the
// previous message.
func botSettings(cfg *config.Config, logger *zap.Logger) tele.Settings {
	return tele.Settings{
		Token:       cfg.BotToken,
		Poller:      &tele.LongPoller{Timeout: cfg.PollTimeout},
		Synchronous: true,
		OnError: func(err error, c tele.Context) {
			logger.Error("Handler returned error", zap.Error(err))
		},
	}
}

// runMetricsServer serves /metrics until ctx is done
func runMetricsServer(ctx context.Context, g *errgroup.Group, addr string, registry *prometheus.Registry, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(registry))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		logger.Info("Metrics server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}
