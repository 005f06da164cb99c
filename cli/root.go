// Package cli implements the loansim command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/strongo/log"

	"loan-simulator/config"
	"loan-simulator/format"
	"loan-simulator/logging"
	"loan-simulator/repository"
)

type globalOptions struct {
	cfgFile string
	verbose bool
}

// NewRootCmd builds the loansim command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "loansim",
		Short: "Loan simulator",
		Long: `loansim computes month by month amortization schedules for a loan
under the French (fixed installment), German (fixed capital) and
American (interest only, balloon at the end) methods.

Run "loansim serve" for the HTTP API or "loansim schedule" to print a
schedule in the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (.toml or .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newScheduleCmd(opts))
	rootCmd.AddCommand(newCompareCmd(opts))
	rootCmd.AddCommand(newRecommendCmd(opts))
	return rootCmd
}

func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// loadConfig reads the configuration and sets up logging.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, err
	}
	level := cfg.Log.Level
	if o.verbose {
		level = "debug"
	}
	logging.Setup(level)
	return cfg, nil
}

func newFormatter(cfg *config.Config) (*format.Formatter, error) {
	return format.NewFormatter(cfg.Display.Locale, cfg.Display.Currency)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newCache builds the configured cache. The returned closer is never nil
// when err is nil.
func newCache(ctx context.Context, cfg *config.Config) (repository.CacheRepository, io.Closer, error) {
	if cfg.Cache.Backend != "redis" {
		return repository.NewMemoryCache(), nopCloser{}, nil
	}

	cache := repository.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.TTL.Duration)
	if err := cache.Ping(ctx); err != nil {
		_ = cache.Close()
		return nil, nil, err
	}
	log.Infof(ctx, "using redis cache at %s", cfg.Cache.RedisAddr)
	return cache, cache, nil
}
