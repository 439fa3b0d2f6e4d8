// Package cli implements the datakit command-line interface.
// Commands are wired to core services through the driving ports.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/datakit-cli/internal/adapters/driven/cache/disk"
	configfile "github.com/custodia-labs/datakit-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/datakit-cli/internal/adapters/driven/fetch/httpfetch"
	"github.com/custodia-labs/datakit-cli/internal/catalog"
	"github.com/custodia-labs/datakit-cli/internal/core/ports/driving"
	"github.com/custodia-labs/datakit-cli/internal/core/services"
	"github.com/custodia-labs/datakit-cli/internal/dataset"
	"github.com/custodia-labs/datakit-cli/internal/logger"
)

// version is the CLI version, overridable at link time.
var version = "0.1.0"

// Flags shared across commands.
var (
	verboseFlag  bool
	cacheDirFlag string
	catalogFlag  string
)

// Wired at startup; tests may substitute fakes.
var (
	datasetService driving.DatasetService
	cacheDir       string
)

var rootCmd = &cobra.Command{
	Use:   "datakit",
	Short: "Fetch, cache, and parse tabular datasets",
	Long: `Datakit declares tabular and structured datasets that are fetched
lazily from remote sources and cached locally. Loads are idempotent:
after the first fetch, a dataset is served from the content-addressed
cache until the cache file is removed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cacheDirFlag, "cache-dir", "", "Override the cache directory")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "Path to a YAML catalog of additional datasets")
}

// setup loads the config file and wires the dataset service.
// Precedence for the cache directory: flag, config file, default.
func setup() error {
	cfg, err := configfile.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cacheDir = dataset.DefaultCacheDir()
	if cfg.CacheDir != "" {
		cacheDir = cfg.CacheDir
	}
	if cacheDirFlag != "" {
		cacheDir = cacheDirFlag
	}

	var fetchOpts []httpfetch.Option
	if cfg.HTTPTimeoutSeconds > 0 {
		fetchOpts = append(fetchOpts, httpfetch.WithTimeout(time.Duration(cfg.HTTPTimeoutSeconds)*time.Second))
	}
	if cfg.RateLimitPerSecond > 0 {
		fetchOpts = append(fetchOpts, httpfetch.WithRateLimit(cfg.RateLimitPerSecond))
	}
	dataset.SetResolver(services.NewResolver(disk.New(), httpfetch.New(fetchOpts...)))

	entries := catalog.BuiltIn()
	if catalogFlag != "" {
		extra, err := catalog.LoadFile(catalogFlag)
		if err != nil {
			return err
		}
		entries = append(entries, extra...)
	}
	datasetService = catalog.NewService(entries, cacheDir)

	logger.Debug("cache directory: %s", cacheDir)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
