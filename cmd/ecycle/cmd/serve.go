package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/ecycle/internal/config"
	"github.com/donaldgifford/ecycle/internal/engine"
	"github.com/donaldgifford/ecycle/internal/notify"
	"github.com/donaldgifford/ecycle/internal/store"
	"github.com/donaldgifford/ecycle/internal/telemetry"
	"github.com/donaldgifford/ecycle/pkg/classify"
)

const shutdownTimeout = 10 * time.Second

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and certificate scheduler",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", true, "apply pending migrations on startup")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Options{
		Endpoint:       cfg.Telemetry.Endpoint,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: Version,
		Insecure:       cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			log.Warn("telemetry shutdown", "error", err)
		}
	}()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if autoMigrate {
		if err := st.Migrate(ctx); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	eng := engine.NewEngine(st, newNotifier(cfg, httpClient, log),
		engine.WithLogger(log),
		engine.WithBaseURL(cfg.Server.BaseURL),
		engine.WithBackfillBatch(cfg.Schedule.CertificateBatch),
	)

	sched, err := engine.NewScheduler(eng, cfg.Schedule.CertificateInterval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()
	defer func() { <-sched.Stop().Done() }()

	e, _ := newServer(serverDeps{
		engine:         eng,
		classifier:     newClassifier(cfg, httpClient, log),
		log:            log,
		version:        Version,
		uploadDir:      cfg.Server.UploadDir,
		maxUploadBytes: cfg.Intake.MaxUploadBytes,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(e, "ecycle"),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", addr, "version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newClassifier uses the hosted inference service when an API key is set and
// the offline heuristic otherwise.
func newClassifier(cfg *config.Config, hc *http.Client, log *slog.Logger) classify.Classifier {
	opts := []classify.AdapterOption{
		classify.WithTimeout(cfg.Classifier.Timeout),
		classify.WithLogger(log),
	}
	if cfg.Classifier.APIKey != "" {
		opts = append(opts, classify.WithPrimary(classify.NewRoboflowBackend(cfg.Classifier.APIKey,
			classify.WithEndpoint(cfg.Classifier.Endpoint),
			classify.WithModel(cfg.Classifier.Model),
			classify.WithHTTPClient(hc),
			classify.WithRateLimit(cfg.Classifier.RateLimit.PerSecond, cfg.Classifier.RateLimit.Burst),
		)))
	} else {
		log.Warn("no classifier API key, using offline heuristic")
	}
	return classify.NewAdapter(opts...)
}

func newNotifier(cfg *config.Config, hc *http.Client, log *slog.Logger) notify.Notifier {
	if cfg.Notifications.Discord.Enabled {
		return notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL, notify.WithHTTPClient(hc))
	}
	return notify.NewNoOpNotifier(log)
}
