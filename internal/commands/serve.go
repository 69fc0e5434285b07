package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/router"
	"github.com/finance-tracker/backend/internal/seed"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	var seedDemo bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, opts, seedDemo)
		},
	}

	cmd.Flags().BoolVar(&seedDemo, "seed-demo", false, "seed the demo data set if the database is empty")
	return cmd
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, opts *rootOptions, seedDemo bool) error {
	cfg := opts.config

	if err := connect(cfg); err != nil {
		return err
	}
	defer disconnect()

	if seedDemo {
		if err := seedIfEmpty(); err != nil {
			return err
		}
	}

	baseURL, err := cfg.BaseURL()
	if err != nil {
		return err
	}

	r, teardown, err := router.Config(baseURL, cfg.RouterOptions())
	defer teardown()
	if err != nil {
		return err
	}
	router.AttachRoutes(r.Group("/"), cfg.RouterOptions())

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("address", srv.Addr).Str("url", baseURL.String()).Str("version", router.Version).Msg("starting server")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}

// seedIfEmpty seeds the demo data set unless the database already has categories.
func seedIfEmpty() error {
	var categories int64
	if err := models.DB.Model(&models.Category{}).Count(&categories).Error; err != nil {
		return err
	}

	if categories > 0 {
		log.Info().Int64("categories", categories).Msg("database is not empty, not seeding demo data")
		return nil
	}

	return seed.Apply(models.DB, seed.Demo(), time.Now())
}
