// cmd/beacon-server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/logic25/beacon-content-engine/internal/common/config"
	"github.com/logic25/beacon-content-engine/internal/common/logger"
	"github.com/logic25/beacon-content-engine/internal/data"
	"github.com/logic25/beacon-content-engine/internal/ideas"
	"github.com/logic25/beacon-content-engine/internal/server"
	"github.com/logic25/beacon-content-engine/internal/store"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "beacon-server",
		Short: "Beacon content intelligence API",
		Long:  "Serves the Beacon dashboard datasets, the content pipeline, and the AI idea generation proxy.",
	}

	var configFile string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configFile)
		},
	}
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "path to config file (default ./configs/config.yaml)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	root.AddCommand(serveCmd, versionCmd)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(configFile string) error {
	var cfg *config.Config
	var err error
	if configFile != "" {
		cfg, err = config.LoadFromFile(configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting beacon server",
		zap.String("version", version),
		zap.String("environment", cfg.App.Environment),
		zap.String("firm", cfg.Firm.Name),
	)
	if cfg.Gateway.APIKey == "" {
		zapLog.Warn("gateway API key is not set; idea generation will fail until configured")
	}

	stores := server.Stores{
		Pipeline:    store.NewPipelineStore(log),
		Ideas:       store.NewIdeaStore(log, data.SeedContentIdeas),
		Suggestions: store.NewSuggestionsStore(log, data.Suggestions),
	}

	service := ideas.NewService(cfg.Gateway, log)
	client := ideas.NewClient(
		generationEndpoint(cfg.Server.Address),
		config.GetDuration(cfg.Gateway.Timeout),
		stores.Ideas,
		log,
		func(n ideas.Notification) {
			if n.Failure {
				log.Warn(n.Title, map[string]interface{}{"description": n.Description})
				return
			}
			log.Info(n.Title, map[string]interface{}{"description": n.Description})
		},
	)

	srv := server.New(cfg, log, stores, service, client)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		zapLog.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	zapLog.Info("beacon server stopped gracefully")
	return nil
}

// generationEndpoint turns the listen address into the URL the request
// client posts to. Bare-port addresses resolve over loopback.
func generationEndpoint(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr + "/api/generate-content-ideas"
}
