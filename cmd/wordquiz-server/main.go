package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/wordquiz/internal/app"
	"github.com/at-ishikawa/wordquiz/internal/bootstrap"
	"github.com/at-ishikawa/wordquiz/internal/config"
	"github.com/at-ishikawa/wordquiz/internal/server"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "wordquiz-server",
		Short:         "Word quiz HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		return errors.New("WORDQUIZ_JWT_SECRET environment variable is required")
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("app.New() > %w", err)
	}
	lifecycle := bootstrap.New(time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second)
	lifecycle.AddShutdownHook(func(context.Context) error {
		return a.Close()
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           newHandler(a),
		ReadHeaderTimeout: 10 * time.Second,
	}
	lifecycle.AddShutdownHook(srv.Shutdown)

	return lifecycle.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func newHandler(a *app.App) http.Handler {
	mux := server.NewServeMux(
		server.NewQuizHandler(a.Quiz, a.Config.Quiz.ProgressDays, a.Location),
		server.NewWordHandler(a.Catalog),
		connect.WithInterceptors(server.NewAuthInterceptor(a.Auth)),
	)
	return server.CORSMiddleware(h2c.NewHandler(mux, &http2.Server{}), a.Config.Server.CORS.AllowedOrigins)
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
