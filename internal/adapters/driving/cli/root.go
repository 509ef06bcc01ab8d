// Package cli implements the cookstore command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/farooqu/cooklang-store/internal/adapters/driven/config/file"
	"github.com/farooqu/cooklang-store/internal/adapters/driven/parser/cooklang"
	"github.com/farooqu/cooklang-store/internal/adapters/driven/storage"
	"github.com/farooqu/cooklang-store/internal/core/services"
	"github.com/farooqu/cooklang-store/internal/logger"
)

var (
	version = "dev"

	configPath string
	verbose    bool

	cfg     *file.Config
	recipes *services.Recipes
)

var rootCmd = &cobra.Command{
	Use:   "cookstore",
	Short: "Cooklang recipe store",
	Long: `cookstore manages a tree of cooklang recipe files and serves them
over an HTTP API. Recipes live as plain text on disk, optionally under
git version control, and are indexed in memory for fast lookup.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		loaded, err := file.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the CLI with the given build version.
func Execute(buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}
	return rootCmd.Execute()
}

// initService builds the recipe service from the loaded configuration.
// The constructor performs the initial index rebuild.
func initService() error {
	if recipes != nil {
		return nil
	}
	store, err := storage.New(cfg.Storage, cfg.DataDir, cfg.Author)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	svc, err := services.NewRecipes(store, cooklang.New())
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}
	recipes = svc
	return nil
}
