package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/datakit-cli/internal/adapters/driven/cache/disk"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the local dataset cache",
}

var cacheDirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the cache directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println(cacheDir)
	},
}

var cachePathCmd = &cobra.Command{
	Use:   "path [url]",
	Short: "Print the cache file path for a source URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(disk.New().Path(cacheDir, args[0]))
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached dataset files",
	Long: `Removes the entire cache directory. The pipeline itself never
deletes cache entries; this is the explicit way to force re-fetching.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cacheDir == "" {
			return errors.New("cache directory not configured")
		}
		if err := os.RemoveAll(cacheDir); err != nil {
			return err
		}
		cmd.Printf("Removed %s\n", cacheDir)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheDirCmd)
	cacheCmd.AddCommand(cachePathCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
