package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FetchError reports a content document that could not be retrieved.
// Status carries the HTTP status, or 404 for a missing local file.
type FetchError struct {
	Path   string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("Failed to load %s: %d", e.Path, e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Source retrieves content documents by site-relative path
// (e.g. "data/site.json").
type Source interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// DirSource reads documents from a local content root.
type DirSource struct {
	Root string
}

// NewDirSource creates a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Root: dir}
}

// Fetch reads path below the root. Paths escaping the root are rejected.
func (s *DirSource) Fetch(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean := path.Clean("/" + p)[1:]
	if clean == "" || !fs.ValidPath(clean) {
		return nil, &FetchError{Path: p, Status: http.StatusBadRequest}
	}
	data, err := os.ReadFile(filepath.Join(s.Root, filepath.FromSlash(clean)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FetchError{Path: p, Status: http.StatusNotFound, Err: err}
		}
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}
	return data, nil
}

// HTTPSource fetches documents relative to a base URL.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource creates an HTTPSource. The base URL is joined with each
// document path using a single slash. Requests are bounded only by the
// caller's context.
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/") + "/",
		Client:  &http.Client{},
	}
}

// Fetch GETs the document with caching disabled. Non-2xx responses become
// a *FetchError carrying the status code.
func (s *HTTPSource) Fetch(ctx context.Context, p string) ([]byte, error) {
	url := s.BaseURL + strings.TrimLeft(p, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", p, err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", p, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Path: p, Status: resp.StatusCode}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}
	return data, nil
}
