package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/strongo/log"

	httpLayer "loan-simulator/http"
	"loan-simulator/service"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			ctx := context.Background()

			formatter, err := newFormatter(cfg)
			if err != nil {
				return err
			}
			cache, closer, err := newCache(ctx, cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			loanService := service.NewLoanService(cache)
			termService := service.NewTermRecommendationService(loanService)

			rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill.Duration)
			defer rateLimiter.Stop()

			server := &http.Server{
				Addr: cfg.Server.Addr,
				Handler: httpLayer.NewRouter(
					httpLayer.NewLoanHandler(loanService, formatter),
					httpLayer.NewTermRecommendationHandler(termService),
					rateLimiter,
				),
				ReadTimeout:  cfg.Server.ReadTimeout.Duration,
				WriteTimeout: cfg.Server.WriteTimeout.Duration,
				IdleTimeout:  cfg.Server.IdleTimeout.Duration,
			}

			serverErr := make(chan error, 1)
			go func() {
				log.Infof(ctx, "API listening on %s", cfg.Server.Addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					serverErr <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				log.Errorf(ctx, "error starting server: %v", err)
				return err
			case <-quit:
				log.Infof(ctx, "shutting down server...")
			}

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout.Duration)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Errorf(ctx, "error during server shutdown: %v", err)
				return err
			}

			log.Infof(ctx, "server exited")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
