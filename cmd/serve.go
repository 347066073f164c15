package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyflow/internal/app"
	"github.com/abhisek/studyflow/internal/auth"
	"github.com/abhisek/studyflow/internal/llm"
	"github.com/abhisek/studyflow/internal/questiongen"
	"github.com/abhisek/studyflow/internal/server"
	"github.com/abhisek/studyflow/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides STUDYFLOW_ADDR, default :8080)")
}

func listenAddr(cmd *cobra.Command) string {
	if a, _ := cmd.Flags().GetString("addr"); a != "" {
		return a
	}
	if a := os.Getenv("STUDYFLOW_ADDR"); a != "" {
		return a
	}
	return ":8080"
}

func runServe(cmd *cobra.Command) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		// No explicit configuration. Probe the standard key env vars
		// before giving up.
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no LLM provider configured: %w", err)
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, s.Events())
	if err != nil {
		return fmt.Errorf("initialize LLM provider: %w", err)
	}
	gen := questiongen.New(provider, questiongen.DefaultConfig())

	srv := server.New(app.New(s, gen), auth.NewService(s.Accounts()), logger)
	logger.Info("studyflow starting", "db", dbPath, "provider", cfg.Provider)
	return srv.Run(ctx, listenAddr(cmd))
}
