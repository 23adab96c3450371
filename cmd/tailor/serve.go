package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/tailor-engine/internal/audit"
	"github.com/jonathan/tailor-engine/internal/config"
	"github.com/jonathan/tailor-engine/internal/fit"
	"github.com/jonathan/tailor-engine/internal/logger"
	"github.com/jonathan/tailor-engine/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes fit analysis, document tailoring and cover letter draft sessions.

Draft routes authenticate with a bearer JWT when JWT_SECRET is set; otherwise every request acts as the
configured default actor.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cfg, err = finalizeSettings(cfg); err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	jwtConfig, err := config.NewJWTConfig()
	switch {
	case errors.Is(err, config.ErrJWTSecretMissing):
		log.Warn("JWT_SECRET not set; draft routes use the default actor", zap.String(logger.FieldActorID, cfg.ActorID))
		jwtConfig = nil
	case err != nil:
		return fmt.Errorf("failed to create JWT config: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	sink, closeSink, err := audit.Open(ctx, cfg.AuditOptions())
	if err != nil {
		return fmt.Errorf("failed to open audit sink: %w", err)
	}
	defer func() {
		if err := closeSink(); err != nil {
			log.Warn("failed to close audit sink", zap.Error(err))
		}
	}()

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		Sink:         sink,
		Analyzer:     fit.NewAnalyzer(cfg.FacetDefaults()),
		JWT:          jwtConfig,
		DefaultActor: cfg.ActorID,
		TenantID:     cfg.TenantID,
		Logger:       log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	log.Info("audit sink ready", zap.String("kind", cfg.AuditSink))
	return srv.Start(ctx)
}
