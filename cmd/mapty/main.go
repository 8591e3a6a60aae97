package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/2beens/mapty/internal/app"
	"github.com/2beens/mapty/internal/config"
	"github.com/2beens/mapty/internal/console"
	"github.com/2beens/mapty/internal/eventloop"
	"github.com/2beens/mapty/internal/geolocation"
	"github.com/2beens/mapty/internal/kv"
	"github.com/2beens/mapty/internal/logging"
	"github.com/2beens/mapty/internal/middleware"
	"github.com/2beens/mapty/internal/telemetry/metrics"
	"github.com/2beens/mapty/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"
)

func main() {
	fmt.Println("starting mapty ...")

	env := flag.String("env", "development", "environment [development | production]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "mapty",
	})
	log.Warnf("---->> running in [%s] environment", cfg.Environment)

	if err := run(cfg); err != nil {
		log.Fatalf("mapty: %s", err)
	}
}

func run(cfg *config.Config) (err error) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := tracing.HoneycombSetup(cfg.TracingEnabled, "mapty")
	if err != nil {
		return fmt.Errorf("tracing setup: %w", err)
	}
	defer shutdownTracing()

	promRegistry := metrics.SetupPrometheus("mapty", prometheus.Labels{
		"env":         cfg.Environment,
		"storage":     cfg.StorageBackend,
		"geolocation": cfg.Geolocation,
	})
	metricsManager := metrics.NewManager("mapty", "console", promRegistry)

	redisPassword := os.Getenv("MAPTY_REDIS_PASS")
	if cfg.StorageBackend == config.StorageRedis && redisPassword == "" {
		log.Warnln("redis password not set. use MAPTY_REDIS_PASS")
	}
	store, closeStore, err := kv.New(ctx, kv.NewParams{
		Config:            cfg,
		RedisPassword:     redisPassword,
		PostgresPassword:  os.Getenv("MAPTY_POSTGRES_PASS"),
		MetricsRegisterer: promRegistry,
	})
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		err = multierr.Append(err, closeStore())
	}()

	ipInfoToken := os.Getenv("IPINFO_TOKEN")
	if cfg.Geolocation == config.GeolocationIPInfo && ipInfoToken == "" {
		log.Warnln("ipinfo token not set, using the anonymous rate limit. use IPINFO_TOKEN")
	}
	geolocator, err := geolocation.New(cfg, ipInfoToken)
	if err != nil {
		return err
	}

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		metricsServer = metrics.NewServer(
			cfg.MetricsAddr,
			promRegistry,
			otelmux.Middleware("metrics-router"),
			middleware.PanicRecovery(metricsManager.CounterHandlerPanics),
			middleware.LogRequest(),
		)
		go func() {
			log.Infof(" > metrics listening on: [%s]", cfg.MetricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("metrics server: %s", err)
			}
		}()
	}

	printer := console.NewPrinter(os.Stdout)
	consoleMap := console.NewMap(printer)
	loop := eventloop.New()

	mapty := app.New(app.Params{
		Map:            consoleMap,
		Geolocator:     geolocator,
		Persistence:    store,
		Renderer:       console.NewList(printer),
		Notifier:       console.NewNotices(printer),
		FormView:       console.NewFormView(printer),
		Loop:           loop,
		Metrics:        metricsManager,
		MapContainer:   cfg.MapContainer,
		ZoomLevel:      cfg.MapZoomLevel,
		PanDuration:    cfg.PanDuration.Duration,
		FormResetDelay: cfg.FormResetDelay.Duration,
	})
	session := console.NewSession(mapty, consoleMap, printer)

	loop.Post(func() {
		if err := mapty.Start(ctx); err != nil {
			log.Errorf("start: %s", err)
		}
	})

	go readCommands(ctx, loop, session, cancel)
	loop.Run(ctx)
	log.Infoln("shutting down ...")

	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		err = multierr.Append(err, metricsServer.Shutdown(shutdownCtx))
	}

	return err
}

// readCommands posts every stdin line to the loop, and stops the app on
// quit or end of input.
func readCommands(ctx context.Context, loop *eventloop.Loop, session *console.Session, stop func()) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		loop.Post(func() {
			if !session.Execute(ctx, line) {
				stop()
			}
		})
	}
	if err := scanner.Err(); err != nil {
		log.Errorf("read stdin: %s", err)
	}
	loop.Post(stop)
}
