// Package main is the terminal front end for the dossier wizard. It runs the
// same application services as the HTTP server in-process, with an
// in-memory session store, and writes the finished document to disk.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/assets"
	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/pdf"
	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/tui"
	"github.com/jsamuelsen11/go-dossier-service/internal/app"
	"github.com/jsamuelsen11/go-dossier-service/internal/catalog"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
	"github.com/jsamuelsen11/go-dossier-service/internal/platform/config"
	"github.com/jsamuelsen11/go-dossier-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-dossier-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
)

type options struct {
	profile    string
	configDir  string
	catalogDir string
	assetsDir  string
	template   string
	output     string
}

// overrides maps the flags that were set onto config keys.
func (o *options) overrides() map[string]any {
	values := make(map[string]any)
	if o.catalogDir != "" {
		values["catalog.dir"] = o.catalogDir
	}
	if o.assetsDir != "" {
		values["assets.dir"] = o.assetsDir
	}
	return values
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "dossier-cli",
		Short: "Fill in a personnel dossier step by step and render it to PDF",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, opts)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.profile, "profile", "local", "configuration profile (e.g. local, prod)")
	flags.StringVar(&opts.configDir, "config-dir", "configs", "directory holding the configuration files")
	flags.StringVar(&opts.catalogDir, "catalog-dir", "", "load steps, templates and layouts from this directory")
	flags.StringVar(&opts.assetsDir, "assets-dir", "", "read canvases and fonts from this directory")
	flags.StringVarP(&opts.template, "template", "t", "", "template ID; prompts for one when empty")
	flags.StringVarP(&opts.output, "output", "o", "dossier.pdf", "file the rendered document is written to")
	return cmd
}

func run(ctx context.Context, opts *options) error {
	cfg, err := config.Load(opts.profile,
		config.WithConfigDir(opts.configDir),
		config.WithOverrides(opts.overrides()),
	)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr, slog.String("component", "dossier-cli"))

	reg := validate.NewRegistry()
	var cat *catalog.Catalog
	if cfg.Catalog.Dir != "" {
		cat, err = catalog.LoadFS(os.DirFS(cfg.Catalog.Dir), reg)
	} else {
		cat, err = catalog.Default(reg)
	}
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	limits := app.ComposeLimits{
		Timeout:  cfg.Compose.Timeout,
		Workers:  cfg.Compose.Workers,
		MaxBatch: cfg.Compose.MaxBatch,
	}
	docs := app.NewDocumentService(cat, assetSource(cfg, logger), pdf.New(logger), limits, nil, logger)
	svc := app.NewWizardService(cat, memory.New(), docs, nil, logger)

	runner := tui.NewRunner(svc, cat.Schema(), tui.NewSurveyDriver(os.Stdout))
	doc, err := runner.Run(ctx, opts.template)
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.output, doc.Bytes, 0o600); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	for _, w := range doc.Warnings {
		logger.Warn("layout overflow", slog.String("warning", w.String()))
	}
	logger.Info("document written",
		slog.String("path", opts.output),
		slog.Int("bytes", len(doc.Bytes)),
	)
	return nil
}

func assetSource(cfg *config.Config, logger *slog.Logger) ports.AssetSource {
	if cfg.Assets.Source == config.AssetSourceHTTP {
		client := httpclient.New(&cfg.Assets.HTTP, "asset-server", nil, logger)
		return assets.NewHTTP(client, logger)
	}
	return assets.NewDir(cfg.Assets.Dir)
}
