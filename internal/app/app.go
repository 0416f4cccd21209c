package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordbook/internal/config"
	"github.com/heartmarshall/wordbook/internal/transport/middleware"
	"github.com/heartmarshall/wordbook/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, opens the store,
// wires the services and serves HTTP until ctx is cancelled, then shuts
// down gracefully within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Driver),
	)

	c, err := NewContainer(ctx, cfg, logger, clockwork.NewRealClock())
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			logger.Error("close store", slog.String("error", err.Error()))
		}
	}()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHTTPHandler(c, cfg, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, c, cfg, logger)
}

// NewHTTPHandler builds the REST router wrapped in the middleware chain.
func NewHTTPHandler(c *Container, cfg *config.Config, logger *slog.Logger) http.Handler {
	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(c.DB, cfg.Store.Driver, Version),
		Words:    rest.NewWordHandler(c.Dictionary, logger),
		Review:   rest.NewReviewHandler(c.Review, logger),
		Sessions: rest.NewSessionHandler(c.Sessions, logger),
		Progress: rest.NewProgressHandler(c.Progress, cfg.Progress.HeatmapDays, logger),
		Import:   rest.NewImportHandler(c.Importer, cfg.Server.MaxUploadBytes, logger),
		Quizzes:  rest.NewQuizHandler(c.Quizzes, logger),
	})

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}

func serve(ctx context.Context, srv *http.Server, c *Container, cfg *config.Config, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if cfg.Reminder.Enabled {
		g.Go(func() error {
			return c.Reminder.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout(cfg))
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func shutdownTimeout(cfg *config.Config) time.Duration {
	if cfg.Server.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return cfg.Server.ShutdownTimeout
}
