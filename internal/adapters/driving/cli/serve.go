package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/farooqu/cooklang-store/internal/adapters/driving/httpapi"
	"github.com/farooqu/cooklang-store/internal/core/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the recipe API over HTTP",
	Long: `Starts the HTTP server on the configured listen address. The recipe
index is built from disk on startup and, when watching is enabled,
rebuilt whenever the recipe tree changes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("listen", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := initService(); err != nil {
		return err
	}

	listen := cfg.Listen
	if flagAddr, _ := cmd.Flags().GetString("listen"); flagAddr != "" {
		listen = flagAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	server := httpapi.NewServer(listen, recipes)
	g.Go(func() error { return server.Run(ctx) })

	if cfg.Watch {
		watcher := services.NewWatcher(cfg.DataDir, recipes)
		g.Go(func() error { return watcher.Run(ctx) })
	}

	cmd.Printf("Serving %d recipes on %s\n", len(recipes.ListAll(ctx)), listen)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
