package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dslab/labsite/internal/assets"
	"github.com/dslab/labsite/internal/content"
	"github.com/dslab/labsite/internal/progress"
)

// SiteGenerator renders every page of the site into a static directory.
type SiteGenerator struct {
	Loader    *content.Loader
	Renderer  *Renderer
	OutputDir string
	// AssetsDir is copied to {OutputDir}/assets. Empty skips asset copying,
	// as when content is fetched from a URL.
	AssetsDir string
	Include   []string
	Exclude   []string
	Reporter  progress.Reporter
	Logger    *slog.Logger
}

// BuildResult summarizes a static build.
type BuildResult struct {
	Pages     int
	Documents int
	Assets    map[assets.Kind]int
}

// AssetCount returns the number of copied asset files.
func (r *BuildResult) AssetCount() int {
	n := 0
	for _, c := range r.Assets {
		n += c
	}
	return n
}

// PageFile returns the output file name of page in a static build.
func PageFile(page content.Page) string {
	if page == content.PageHome {
		return "index.html"
	}
	return string(page) + ".html"
}

// Generate builds the full static site. Any page whose fetch sequence
// fails aborts the build.
func (g *SiteGenerator) Generate(ctx context.Context) (*BuildResult, error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	var files []assets.File
	if g.AssetsDir != "" {
		var err error
		files, err = assets.Walk(assets.Options{Root: g.AssetsDir, Include: g.Include, Exclude: g.Exclude})
		if err != nil {
			return nil, fmt.Errorf("scanning assets: %w", err)
		}
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, err
	}

	result := &BuildResult{Assets: assets.Summary(files)}
	total := len(content.Pages) + len(content.Documents) + len(files) + 1
	step := 0
	reporter.Start(total)
	defer reporter.Finish()

	for _, page := range content.Pages {
		step++
		reporter.Update(step, PageFile(page))
		if err := g.renderPage(ctx, page); err != nil {
			return nil, err
		}
		result.Pages++
	}

	for _, doc := range content.Documents {
		step++
		reporter.Update(step, doc)
		copied, err := g.copyDocument(ctx, doc)
		if err != nil {
			return nil, err
		}
		if copied {
			result.Documents++
		} else {
			logger.Debug("document not present, skipped", "path", doc)
		}
	}

	// Write static assets.
	step++
	reporter.Update(step, "style.css, script.js")
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), Stylesheet(), 0o644); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), Script(), 0o644); err != nil {
		return nil, err
	}

	assetsOut := filepath.Join(g.OutputDir, "assets")
	for _, f := range files {
		step++
		reporter.Update(step, f.RelPath)
		if err := assets.Copy(f, assetsOut); err != nil {
			return nil, fmt.Errorf("copying asset %s: %w", f.RelPath, err)
		}
	}

	logger.Info("site built",
		"output", g.OutputDir,
		"pages", result.Pages,
		"documents", result.Documents,
		"assets", len(files))
	return result, nil
}

// renderPage loads and renders a single page at its default state.
func (g *SiteGenerator) renderPage(ctx context.Context, page content.Page) error {
	data, err := g.Loader.Load(ctx, page)
	if err != nil {
		return fmt.Errorf("loading %s page: %w", page, err)
	}

	f, err := os.Create(filepath.Join(g.OutputDir, PageFile(page)))
	if err != nil {
		return err
	}
	defer f.Close()

	return g.Renderer.RenderPage(f, data, nil, DefaultState())
}

// copyDocument copies a content document into {OutputDir}/data so the
// static site can serve it alongside the pages. Missing documents are
// skipped and reported as not copied.
func (g *SiteGenerator) copyDocument(ctx context.Context, doc string) (bool, error) {
	raw, err := g.Loader.Source().Fetch(ctx, doc)
	var fe *content.FetchError
	if errors.As(err, &fe) && fe.Status == http.StatusNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("copying %s: %w", doc, err)
	}

	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(doc))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return false, err
	}
	if err := os.WriteFile(outPath, raw, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
