package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/dslab/labsite/internal/config"
	"github.com/dslab/labsite/internal/content"
	"github.com/dslab/labsite/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `labsite init` to create a config file", err)
	}
	if logLevel != "" {
		cfg.LogLevel = config.LogLevel(logLevel)
	}
	if verbose {
		cfg.LogLevel = config.LogDebug
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger writes human-readable records to stderr at the configured level.
func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

// newLoader reads content from content_url when set, otherwise from
// content_dir.
func newLoader(cfg *config.Config, logger *slog.Logger) *content.Loader {
	var src content.Source
	if cfg.ContentURL != "" {
		src = content.NewHTTPSource(cfg.ContentURL)
	} else {
		src = content.NewDirSource(cfg.ContentDir)
	}
	return content.NewLoader(src, logger)
}

// assetsDir is the local assets directory, or "" when content is remote.
func assetsDir(cfg *config.Config) string {
	if cfg.ContentURL != "" {
		return ""
	}
	return filepath.Join(cfg.ContentDir, "assets")
}

func newRenderer(cfg *config.Config, live, reload bool) (*site.Renderer, error) {
	interval, err := cfg.CarouselInterval()
	if err != nil {
		return nil, err
	}
	buildID := ""
	if Version != "dev" {
		buildID = Version
	}
	return site.NewRenderer(site.Options{
		Live:           live,
		Reload:         reload,
		BuildID:        buildID,
		NewsLimit:      cfg.NewsLimit,
		SwipeThreshold: cfg.Carousel.SwipeThreshold,
		Interval:       interval,
	})
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
