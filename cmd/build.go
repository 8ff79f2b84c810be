package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dslab/labsite/internal/assets"
	"github.com/dslab/labsite/internal/progress"
	"github.com/dslab/labsite/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static website",
	Long: `Renders every page at its default state into flat HTML files, copies the
content documents and assets, and writes the stylesheet and script. The
result can be served by any static file host.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output_dir")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	logger := newLogger(cfg)

	renderer, err := newRenderer(cfg, false, false)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := &site.SiteGenerator{
		Loader:    newLoader(cfg, logger),
		Renderer:  renderer,
		OutputDir: cfg.OutputDir,
		AssetsDir: assetsDir(cfg),
		Include:   cfg.Assets.Include,
		Exclude:   cfg.Assets.Exclude,
		Reporter:  progress.NewReporter("Building site"),
		Logger:    logger,
	}
	result, err := gen.Generate(ctx)
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages, %d documents, %d assets)\n",
		cfg.OutputDir, result.Pages, result.Documents, result.AssetCount())
	for _, kind := range []assets.Kind{
		assets.KindImage, assets.KindStyle, assets.KindScript, assets.KindFont,
		assets.KindDocument, assets.KindData, assets.KindOther,
	} {
		if n := result.Assets[kind]; n > 0 {
			fmt.Printf("  %-9s %d\n", kind, n)
		}
	}
	return nil
}
