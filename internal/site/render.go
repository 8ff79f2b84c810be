package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"

	"github.com/dslab/labsite/internal/content"
	"github.com/dslab/labsite/internal/gallery"
)

// Options configures a Renderer.
type Options struct {
	// Live renders for `labsite serve`: clean page URLs, filter forms,
	// server-rendered lightbox links and WebSocket widgets. Static builds
	// render the default state only.
	Live bool
	// Reload adds the live-reload hook to served pages.
	Reload bool
	// BuildID is appended to style.css and script.js URLs for cache busting.
	// NewRenderer generates one when empty.
	BuildID        string
	NewsLimit      int
	SwipeThreshold float64
	Interval       time.Duration
	Now            func() time.Time
}

// Renderer turns loaded page data into HTML.
type Renderer struct {
	opts Options
	md   goldmark.Markdown
	tmpl *template.Template
}

// NewRenderer parses the page templates.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.BuildID == "" {
		opts.BuildID = uuid.NewString()[:8]
	}
	if opts.NewsLimit <= 0 {
		opts.NewsLimit = 6
	}
	if opts.SwipeThreshold <= 0 {
		opts.SwipeThreshold = gallery.DefaultSwipeThreshold
	}
	if opts.Interval <= 0 {
		opts.Interval = gallery.DefaultInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	r := &Renderer{opts: opts, md: newMarkdown()}
	funcs := template.FuncMap{
		"asset":     r.asset,
		"itoa":      strconv.Itoa,
		"inc":       func(i int) int { return i + 1 },
		"markLabel": content.MarkLabel,
	}
	tmpl, err := template.New("page").Funcs(funcs).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Options returns the effective options.
func (r *Renderer) Options() Options { return r.opts }

// asset returns the URL of a generated asset. Pages sit at the site root
// in both modes, so relative URLs resolve the same way.
func (r *Renderer) asset(name string) string {
	return name + "?v=" + r.opts.BuildID
}

// Render writes v as a complete HTML page.
func (r *Renderer) Render(w io.Writer, v *PageView) error {
	// Execute into a buffer so a template failure never leaves a
	// half-written page behind.
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "layout", v); err != nil {
		return fmt.Errorf("rendering %s: %w", v.Page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderPage builds the view for data and renders it.
func (r *Renderer) RenderPage(w io.Writer, data *content.PageData, loadErr error, st State) error {
	return r.Render(w, r.View(data, loadErr, st))
}

// Stylesheet returns the site stylesheet.
func Stylesheet() []byte { return []byte(cssContent) }

// Script returns the browser adapter script.
func Script() []byte { return []byte(jsContent) }
