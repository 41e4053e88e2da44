package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/internal/publish"
	"github.com/iwvelando/finance-calculators/internal/seo"
	"github.com/iwvelando/finance-calculators/internal/server"
	"github.com/iwvelando/finance-calculators/internal/site"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand(a *app) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the calculators website and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if address != "" {
				a.conf.Server.Address = address
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "listen address override, e.g. :8080")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	registry := calculator.Default()
	siteInfo := seo.NewSite(a.conf.Site)

	renderer, err := site.NewRenderer(siteInfo, registry)
	if err != nil {
		return fmt.Errorf("failed to prepare pages: %w", err)
	}

	publisher := publish.NewPublisher(
		publish.NewBuilder(siteInfo, registry, a.conf.Feeds.ItemLimit),
		a.logger,
	)
	if err := publisher.Start(a.conf.Feeds.RefreshSchedule); err != nil {
		return fmt.Errorf("failed to start publisher: %w", err)
	}
	defer publisher.Stop()

	handler := server.NewHandler(server.Options{
		Logger:      a.logger,
		Registry:    registry,
		Renderer:    renderer,
		Publisher:   publisher,
		MaxBodySize: a.conf.Server.MaxBodySizeBytes(),
		RateLimit:   a.conf.Server.RateLimit,
		RateBurst:   a.conf.Server.RateBurst,
		BatchLimit:  constants.DefaultBatchLimit,
		Version:     a.version,
	})

	a.logger.Info("serving calculators",
		zap.String("op", "commands.serve"),
		zap.String("address", a.conf.Server.Address),
		zap.String("baseUrl", a.conf.Site.BaseURL),
		zap.Int("calculators", registry.Len()),
	)

	srv := server.New(a.conf.Server, handler, a.logger)
	if err := srv.Run(ctx); err != nil {
		a.logger.Error("server stopped with error",
			zap.String("op", "commands.serve"),
			zap.Error(err),
		)
		return err
	}
	return nil
}
