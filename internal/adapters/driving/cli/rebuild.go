package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the recipe index from disk",
	Long: `Scans the recipe tree and reports what the index picks up. Files
that cannot be read or parsed are skipped with a warning.`,
	RunE: runRebuild,
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

func runRebuild(cmd *cobra.Command, _ []string) error {
	if err := initService(); err != nil {
		return err
	}

	ctx := context.Background()
	if err := recipes.Rebuild(ctx); err != nil {
		return err
	}

	cmd.Printf("Indexed %d recipe(s) in %d categorie(s)\n",
		len(recipes.ListAll(ctx)), len(recipes.Categories(ctx)))
	return nil
}
