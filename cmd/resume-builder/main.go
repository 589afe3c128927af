// Package main is the entry point for the resume-builder CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/notify"
	"resume-builder/internal/render"
	"resume-builder/internal/store"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/formatters"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "resume-builder",
	Short: "Edit a resume and export it as PDF",
	Long: `resume-builder keeps one resume document in a key-value store, renders a
live HTML preview of it and exports it to PDF with headless Chrome.

Run "serve" for the HTTP editor, or use the render, export, dump and load
subcommands directly.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./config.yaml)")
}

// app is everything a subcommand needs, built from configuration.
type app struct {
	cfg     config.Config
	log     logger.Logger
	kv      store.KV
	center  *notify.Center
	editor  *usecase.Editor
	handler *httpadapter.Handler
	closers []func()
}

func newApp(cmd *cobra.Command) (*app, error) {
	ctx := cmd.Context()
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.NewZapLogger(cfg.App.Env)
	a := &app{cfg: cfg, log: log}

	kv, err := store.Open(ctx, store.Options{
		Driver:     cfg.Store.Driver,
		Dir:        cfg.Store.Dir,
		SQLitePath: cfg.Store.SQLitePath,
		DSN:        cfg.Store.DSN,
		RedisAddr:  cfg.Redis.Addr,
		RedisPass:  cfg.Redis.Password,
		RedisDB:    cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Store.Driver, err)
	}
	a.kv = kv
	a.closers = append(a.closers, func() { kv.Close() })
	log.Info("store ready", zap.String("driver", cfg.Store.Driver))

	// export history lives next to the snapshot when Postgres is in use
	jobsRepo := repository.NewJobsRepo(nil)
	if pg, ok := kv.(*store.Postgres); ok {
		jobsRepo = repository.NewJobsRepo(pg.Pool())
	}

	html, err := render.NewRenderer(cfg.Export.TemplatesDir)
	if err != nil {
		a.close()
		return nil, err
	}

	a.center = notify.NewCenter(log)
	a.closers = append(a.closers, a.center.Close)

	exporter := usecase.NewExporter(
		infra.NewChromedpRenderer(infra.ParsePaper(cfg.Export.Paper), 0),
		html,
		jobsRepo,
		a.center,
		usecase.ExporterConfig{
			OutputDir:      cfg.Export.OutputDir,
			Attempts:       cfg.Export.Attempts,
			NotifyDuration: cfg.Notify.Duration,
		},
		log,
	)

	a.editor = usecase.NewEditor(ctx,
		repository.NewSnapshotRepo(kv, cfg.Store.Key, log),
		html,
		usecase.WithExporter(exporter),
		usecase.WithNotifier(a.center, cfg.Notify.Duration),
		usecase.WithDateStyle(formatters.ParseDateStyle(cfg.Render.DateStyle)),
		usecase.WithLogger(log),
	)
	a.handler = httpadapter.NewHandler(a.editor, a.center, log)
	return a, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
