package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dslab/labsite/internal/assets"
	"github.com/dslab/labsite/internal/content"
	"github.com/dslab/labsite/internal/listing"
)

// HandlerOptions configures the live site handler.
type HandlerOptions struct {
	// AssetExclude hides matching files below assets/.
	AssetExclude   []string
	SwipeThreshold float64
	Interval       time.Duration
	// Reload, when set, serves /ws/reload.
	Reload *ReloadHub
}

// Handler serves pages rendered per request plus the JSON listing API,
// content documents, assets and the WebSocket widget sessions.
type Handler struct {
	loader   *content.Loader
	renderer *Renderer
	opts     HandlerOptions
	logger   *slog.Logger
	sessions sessions
}

// NewHandler creates a Handler. The renderer should be built with
// Options.Live set.
func NewHandler(loader *content.Loader, renderer *Renderer, opts HandlerOptions, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ro := renderer.Options()
	if opts.SwipeThreshold <= 0 {
		opts.SwipeThreshold = ro.SwipeThreshold
	}
	if opts.Interval <= 0 {
		opts.Interval = ro.Interval
	}
	return &Handler{loader: loader, renderer: renderer, opts: opts, logger: logger}
}

// RegisterRoutes mounts the site on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/style.css", h.handleStatic("text/css; charset=utf-8", Stylesheet()))
	r.Get("/script.js", h.handleStatic("text/javascript; charset=utf-8", Script()))

	r.Get("/api/publications", h.handlePublicationsAPI)
	r.Get("/api/projects", h.handleProjectsAPI)
	r.Get("/api/gallery", h.handleGalleryAPI)

	r.Get("/data/*", h.handleDocument("data/"))
	r.Get("/assets/*", h.handleDocument("assets/"))

	r.Get("/ws/gallery", h.handleGallerySession)
	r.Get("/ws/carousel", h.handleCarouselSession)
	if h.opts.Reload != nil {
		r.Get("/ws/reload", h.opts.Reload.ServeHTTP)
	}

	r.Get("/", h.handlePage)
	r.Get("/{page}", h.handlePage)
}

// Close ends every open WebSocket session.
func (h *Handler) Close() {
	h.sessions.closeAll()
	if h.opts.Reload != nil {
		h.opts.Reload.Close()
	}
}

// pageFromPath maps "/", "/members", "/members.html" and "/index.html"
// to a page.
func pageFromPath(name string) (content.Page, bool) {
	name = strings.TrimSuffix(name, ".html")
	if name == "" || name == "index" {
		return content.PageHome, true
	}
	return content.ParsePage(name)
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	page, ok := pageFromPath(chi.URLParam(r, "page"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	data, loadErr := h.loader.Load(r.Context(), page)
	if loadErr != nil {
		h.logger.Warn("page load failed", "page", page, "err", loadErr)
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderPage(&buf, data, loadErr, StateFromValues(r.URL.Query())); err != nil {
		h.logger.Error("render failed", "page", page, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if loadErr != nil {
		w.WriteHeader(http.StatusBadGateway)
	}
	_, _ = buf.WriteTo(w)
}

func (h *Handler) handleStatic(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(body)
	}
}

// handleDocument serves files below prefix from the content source.
func (h *Handler) handleDocument(prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rel := path.Clean("/" + chi.URLParam(r, "*"))[1:]
		if rel == "" {
			http.NotFound(w, r)
			return
		}
		if prefix == "assets/" && assets.MatchesExclude(rel, h.opts.AssetExclude) {
			http.NotFound(w, r)
			return
		}

		raw, err := h.loader.Source().Fetch(r.Context(), prefix+rel)
		var fe *content.FetchError
		switch {
		case errors.As(err, &fe):
			http.Error(w, fe.Error(), fe.Status)
			return
		case err != nil:
			h.logger.Warn("document fetch failed", "path", prefix+rel, "err", err)
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", assets.MediaType(rel))
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(raw)
	}
}

// apiResponse is the JSON body of the listing endpoints.
type apiResponse struct {
	Filter  listing.Filter      `json:"filter"`
	Total   int                 `json:"total"`
	Count   int                 `json:"count"`
	Options listing.Options     `json:"options"`
	Items   any                 `json:"items,omitempty"`
	Groups  []listing.YearGroup `json:"groups,omitempty"`
}

type apiError struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// loadForAPI loads page data, writing a 502 error body on failure.
func (h *Handler) loadForAPI(w http.ResponseWriter, r *http.Request, page content.Page) (*content.PageData, bool) {
	data, err := h.loader.Load(r.Context(), page)
	if err != nil {
		h.logger.Warn("api load failed", "page", page, "err", err)
		writeJSON(w, http.StatusBadGateway, apiError{Error: err.Error()})
		return nil, false
	}
	return data, true
}

func (h *Handler) handlePublicationsAPI(w http.ResponseWriter, r *http.Request) {
	data, ok := h.loadForAPI(w, r, content.PagePublications)
	if !ok {
		return
	}
	f := listing.FromValues(r.URL.Query())
	filtered := listing.Publications(data.Publications, f)
	writeJSON(w, http.StatusOK, apiResponse{
		Filter:  f,
		Total:   len(data.Publications),
		Count:   len(filtered),
		Options: listing.PublicationOptions(data.Publications),
		Groups:  listing.GroupByYear(filtered),
	})
}

func (h *Handler) handleProjectsAPI(w http.ResponseWriter, r *http.Request) {
	data, ok := h.loadForAPI(w, r, content.PageProjects)
	if !ok {
		return
	}
	f := listing.FromValues(r.URL.Query())
	filtered := listing.Projects(data.Projects, f)
	writeJSON(w, http.StatusOK, apiResponse{
		Filter:  f,
		Total:   len(data.Projects),
		Count:   len(filtered),
		Options: listing.ProjectOptions(data.Projects),
		Items:   filtered,
	})
}

func (h *Handler) handleGalleryAPI(w http.ResponseWriter, r *http.Request) {
	data, ok := h.loadForAPI(w, r, content.PageGallery)
	if !ok {
		return
	}
	f := listing.FromValues(r.URL.Query())
	filtered := listing.Gallery(data.Gallery, f)
	writeJSON(w, http.StatusOK, apiResponse{
		Filter:  f,
		Total:   len(data.Gallery),
		Count:   len(filtered),
		Options: listing.GalleryOptions(data.Gallery),
		Items:   filtered,
	})
}
