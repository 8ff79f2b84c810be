package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Page identifies one page of the site.
type Page string

const (
	PageHome         Page = "home"
	PageMembers      Page = "members"
	PageProjects     Page = "projects"
	PagePublications Page = "publications"
	PageGallery      Page = "gallery"
	PageContact      Page = "contact"
)

// Pages lists every page in navigation order.
var Pages = []Page{PageHome, PageMembers, PageProjects, PagePublications, PageGallery, PageContact}

// Content document paths, relative to the content root.
const (
	SiteDoc         = "data/site.json"
	NewsDoc         = "data/news.json"
	CarouselDoc     = "data/carousel.json"
	MembersDoc      = "data/members.json"
	ProjectsDoc     = "data/projects.json"
	PublicationsDoc = "data/publications.json"
	GalleryDoc      = "data/gallery.json"
)

// Documents lists every content document the site can read.
var Documents = []string{SiteDoc, NewsDoc, CarouselDoc, MembersDoc, ProjectsDoc, PublicationsDoc, GalleryDoc}

// ParsePage maps a page name to a Page.
func ParsePage(name string) (Page, bool) {
	for _, p := range Pages {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// PageData is everything one page render reads. SiteLoaded is false when
// branding fell back to DefaultSite.
type PageData struct {
	Page         Page
	Site         Site
	SiteLoaded   bool
	News         []NewsItem
	Slides       []Slide
	Members      Members
	Projects     []Project
	Publications []Publication
	Gallery      []GalleryItem
}

// Loader runs the per-page document fetch sequence against a Source.
type Loader struct {
	src    Source
	logger *slog.Logger
}

// NewLoader creates a Loader. A nil logger discards output.
func NewLoader(src Source, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{src: src, logger: logger}
}

// Source returns the underlying document source.
func (l *Loader) Source() Source { return l.src }

// Load fetches site.json and then the page's own documents, one at a
// time. The first failure stops the sequence. The returned PageData is
// never nil: on error it holds whatever loaded before the failure, with
// default branding if site.json itself failed.
func (l *Loader) Load(ctx context.Context, page Page) (*PageData, error) {
	data := &PageData{Page: page, Site: DefaultSite()}

	site, err := fetchParse(ctx, l, SiteDoc, ParseSite)
	if err != nil {
		return data, err
	}
	data.Site = site
	data.SiteLoaded = true

	switch page {
	case PageHome:
		if data.News, err = fetchParse(ctx, l, NewsDoc, ParseNews); err != nil {
			return data, err
		}
		slides, err := fetchParse(ctx, l, CarouselDoc, ParseSlides)
		var fe *FetchError
		switch {
		case errors.As(err, &fe) && fe.Status == http.StatusNotFound:
			l.logger.Debug("no carousel document", "path", CarouselDoc)
		case err != nil:
			return data, err
		default:
			data.Slides = slides
		}
	case PageMembers:
		if data.Members, err = fetchParse(ctx, l, MembersDoc, ParseMembers); err != nil {
			return data, err
		}
	case PageProjects:
		if data.Projects, err = fetchParse(ctx, l, ProjectsDoc, ParseProjects); err != nil {
			return data, err
		}
	case PagePublications:
		if data.Publications, err = fetchParse(ctx, l, PublicationsDoc, ParsePublications); err != nil {
			return data, err
		}
	case PageGallery:
		if data.Gallery, err = fetchParse(ctx, l, GalleryDoc, ParseGallery); err != nil {
			return data, err
		}
	case PageContact:
	default:
		return data, fmt.Errorf("unknown page %q", page)
	}
	return data, nil
}

func fetchParse[T any](ctx context.Context, l *Loader, path string, parse func([]byte) (T, error)) (T, error) {
	var zero T
	l.logger.Debug("fetching document", "path", path)
	raw, err := l.src.Fetch(ctx, path)
	if err != nil {
		return zero, err
	}
	v, err := parse(raw)
	if err != nil {
		return zero, fmt.Errorf("parsing %s: %w", path, err)
	}
	return v, nil
}
