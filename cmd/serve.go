package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dslab/labsite/internal/server"
	"github.com/dslab/labsite/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site live for preview",
	Long: `Starts an HTTP server that renders every request from the current
content: filter forms work, the gallery lightbox and the hero carousel are
driven over WebSocket sessions, and pages reload when content files change.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides server.port)")
	serveCmd.Flags().Bool("open", false, "open the site in a browser")
	serveCmd.Flags().Bool("no-watch", false, "disable live reload on content changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}
	noWatch, _ := cmd.Flags().GetBool("no-watch")
	watch := cfg.Server.Watch && !noWatch && cfg.ContentURL == ""
	logger := newLogger(cfg)

	renderer, err := newRenderer(cfg, true, watch)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := site.HandlerOptions{AssetExclude: cfg.Assets.Exclude}
	if watch {
		hub := site.NewReloadHub(logger)
		opts.Reload = hub
		dirs := []string{filepath.Join(cfg.ContentDir, "data"), assetsDir(cfg)}
		go func() {
			if err := site.Watch(ctx, dirs, hub.Broadcast, logger); err != nil {
				logger.Warn("live reload disabled", "err", err)
			}
		}()
	}

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		AllowAll: cfg.Server.AllowAllOrigins,
	}, logger)
	handler := site.NewHandler(newLoader(cfg, logger), renderer, opts, logger)
	handler.RegisterRoutes(srv.Router())
	srv.RegisterOnShutdown(handler.Close)

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", "err", err)
		}
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	source := cfg.ContentDir
	if cfg.ContentURL != "" {
		source = cfg.ContentURL
	}
	fmt.Fprintf(os.Stderr, "labsite %s serving %s at %s\n", Version, source, url)
	if watch {
		fmt.Fprintln(os.Stderr, "  Live reload: on")
	}
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop.")

	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(url)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}
