package internal

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"msd/internal/controllers"
	"msd/internal/providers"
	"msd/internal/storage/interfaces"
	"msd/internal/structures"
)

type App struct {
	WebServer *http.Server
}

// assembleMux layers the handler: API routes behind the metrics
// middleware, health and the Prometheus endpoint outside it so probes
// don't pollute request metrics.
func assembleMux(healthController *controllers.HealthController, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface, conf *structures.Config) http.Handler {
	// Method-qualified patterns: GET and POST share most paths
	api := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		api.Handle(route.Pattern(), route.Handler)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", providers.MetricsMiddleware(metrics, api))
	return mux
}

func NewApp(apiController *controllers.ApiController, healthController *controllers.HealthController, scheduler interfaces.SchedulerInterface, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) (*App, error) {
	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)

	// A broken snapshot must not keep the daemon down
	if err := scheduler.Restore(); err != nil {
		logger.Errorf(providers.TypeApp, "Snapshot restore failed: %s", err)
	}
	scheduler.Init()

	addr := net.JoinHostPort(conf.WebServer.Host, strconv.Itoa(conf.WebServer.Port))
	app := &App{
		WebServer: &http.Server{
			Addr:         addr,
			Handler:      assembleMux(healthController, router, metrics, conf),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof(providers.TypeApp, "HTTP server listening on %s", addr)
		if err := app.WebServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		return nil, fmt.Errorf("server error: %w", err)
	}

	if err := app.shutdown(scheduler); err != nil {
		return nil, err
	}
	logger.Infof(providers.TypeApp, "gracefully stopped")
	return app, nil
}

// shutdown drains in-flight requests first, then writes the final
// snapshot so nothing accepted before the drain is lost.
func (a *App) shutdown(scheduler interfaces.SchedulerInterface) error {
	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.WebServer.Shutdown(ctx); err != nil {
		return err
	}
	return scheduler.Persist()
}
