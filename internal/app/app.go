package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/numcalc-backend/internal/config"
	"github.com/heartmarshall/numcalc-backend/internal/metrics"
	"github.com/heartmarshall/numcalc-backend/internal/numword"
	"github.com/heartmarshall/numcalc-backend/internal/service/calculator"
	"github.com/heartmarshall/numcalc-backend/internal/transport/middleware"
	"github.com/heartmarshall/numcalc-backend/internal/transport/rest"
)

// App holds the wired HTTP stack. Call Close when done with it.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	metrics *metrics.Metrics
	limiter *middleware.RateLimiter
	handler http.Handler
}

// New wires services, handlers and middleware from cfg.
func New(cfg *config.Config, logger *slog.Logger) *App {
	a := &App{
		cfg:     cfg,
		log:     logger,
		metrics: metrics.New(),
	}

	svc := calculator.NewService(logger, a.metrics, cfg.Calculator)
	calcHandler := rest.NewCalculatorHandler(svc, logger)
	healthHandler := rest.NewHealthHandler(rest.CheckFunc(func(context.Context) error {
		return numword.SelfCheck()
	}), BuildVersion())

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/convert", calcHandler.Convert)
	mux.HandleFunc("POST /api/calculate", calcHandler.Calculate)
	mux.HandleFunc("POST /api/convert-and-calculate", calcHandler.ConvertAndCalculate)
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, a.metrics.Handler())
	}

	rateLimited := cfg.RateLimit.RequestsPerMinute > 0
	var limit middleware.Middleware
	if rateLimited {
		a.limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		limit = a.limiter.Limit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	a.handler = middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.If(cfg.Metrics.Enabled, middleware.Metrics(a.metrics)),
		middleware.CORS(cfg.CORS),
		middleware.If(rateLimited, limit),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)(mux)

	return a
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Close releases background resources.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
}

// Serve runs the HTTP server on ln until ctx is cancelled, then shuts it
// down within the configured timeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.log.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		a.log.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Run is the application entry point. It wires the HTTP stack and serves
// on the configured address until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	a := New(cfg, logger)
	defer a.Close()

	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr(), err)
	}

	return a.Serve(ctx, ln)
}
