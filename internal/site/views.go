package site

import (
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/dslab/labsite/internal/content"
	"github.com/dslab/labsite/internal/gallery"
	"github.com/dslab/labsite/internal/listing"
)

// State is the per-request UI state carried in the query string: the list
// filter, the open lightbox item and the selected carousel slide.
type State struct {
	Filter listing.Filter
	View   int // lightbox index into the filtered gallery; -1 when closed
	Slide  int
}

// DefaultState is the state of a freshly loaded page.
func DefaultState() State {
	return State{View: -1}
}

// StateFromValues reads State from query parameters. Unparseable view and
// slide values fall back to the defaults.
func StateFromValues(v url.Values) State {
	st := DefaultState()
	st.Filter = listing.FromValues(v)
	if n, err := strconv.Atoi(v.Get("view")); err == nil && n >= 0 {
		st.View = n
	}
	if n, err := strconv.Atoi(v.Get("slide")); err == nil {
		st.Slide = n
	}
	return st
}

// NavItem is one entry of the top navigation.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// PageView is the declarative description of one rendered page. Exactly
// one of the section views is set, or none when Error is non-empty.
type PageView struct {
	Page    content.Page
	Title   string
	Site    content.Site
	Nav     []NavItem
	Year    int
	Live    bool
	Reload  bool
	BuildID string
	Error   string

	Home         *HomeView
	Members      *MembersView
	Projects     *ProjectsView
	Publications *PublicationsView
	Gallery      *GalleryView
	Contact      *ContactView
}

// HomeView holds the hero, the latest news and the carousel.
type HomeView struct {
	Lab      content.Lab
	Hero     content.Hero
	News     []content.NewsItem
	Carousel *CarouselSection
}

// CarouselSection renders the hero carousel at its selected slide.
type CarouselSection struct {
	Index      int
	Count      int
	Slides     []SlideView
	Dots       []DotView
	PrevHref   string
	NextHref   string
	IntervalMS int64
	Threshold  float64
}

// SlideView is one carousel slide.
type SlideView struct {
	content.Slide
	Index  int
	Active bool
	Anchor string
}

// DotView is one carousel indicator.
type DotView struct {
	Index  int
	Active bool
	Href   string
}

// MembersView holds the three member grids.
type MembersView struct {
	Groups []MemberGroup
}

// MemberGroup is one member grid.
type MemberGroup struct {
	ID      string
	Title   string
	Members []content.Member
}

// ProjectsView is the filtered research list.
type ProjectsView struct {
	Filter  listing.Filter
	Options listing.Options
	Items   []content.Project
	Total   int
}

// Empty reports whether the filter left nothing to show.
func (v *ProjectsView) Empty() bool { return len(v.Items) == 0 }

// PublicationsView is the filtered, grouped publication list.
type PublicationsView struct {
	Filter  listing.Filter
	Options listing.Options
	Groups  []PubGroup
	Count   int
	Total   int
}

// Empty reports whether the filter left nothing to show.
func (v *PublicationsView) Empty() bool { return v.Count == 0 }

// PubGroup is the publications of one year.
type PubGroup struct {
	Year  int
	Label string
	Items []PubCard
}

// PubCard is a publication with display strings resolved.
type PubCard struct {
	content.Publication
	AuthorLine string
	YearLabel  string
	MarkChips  []MarkChip
	DetailHTML template.HTML
}

// MarkChip is a publication mark with its display label.
type MarkChip struct {
	Key   string
	Label string
}

// GalleryView is the filtered photo grid plus the lightbox.
type GalleryView struct {
	Filter   listing.Filter
	Options  listing.Options
	Cards    []GalleryCard
	Total    int
	Lightbox gallery.View
	PrevHref string
	NextHref string
	Close    string
}

// Empty reports whether the filter left nothing to show.
func (v *GalleryView) Empty() bool { return len(v.Cards) == 0 }

// GalleryCard is one thumbnail in the grid.
type GalleryCard struct {
	content.GalleryItem
	Index int
	Href  string
}

// ContactView holds the address and recruiting cards.
type ContactView struct {
	Contact        content.Contact
	Recruiting     content.Recruiting
	RecruitingBody template.HTML
}

var pageTitles = map[content.Page]string{
	content.PageHome:         "Home",
	content.PageMembers:      "Members",
	content.PageProjects:     "Research",
	content.PagePublications: "Publications",
	content.PageGallery:      "Gallery",
	content.PageContact:      "Contact",
}

// pageHref returns the link to page: clean paths when served live, flat
// .html files in a static build.
func (r *Renderer) pageHref(page content.Page) string {
	if r.opts.Live {
		if page == content.PageHome {
			return "/"
		}
		return "/" + string(page)
	}
	if page == content.PageHome {
		return "index.html"
	}
	return string(page) + ".html"
}

func (r *Renderer) pageHrefWith(page content.Page, v url.Values) string {
	href := r.pageHref(page)
	if q := v.Encode(); q != "" {
		href += "?" + q
	}
	return href
}

// View builds the PageView for page from loaded data. A non-nil loadErr
// produces the error view: branding only, a single error message and no
// page sections. Static builds ignore st.
func (r *Renderer) View(data *content.PageData, loadErr error, st State) *PageView {
	site := content.DefaultSite()
	page := content.PageHome
	if data != nil {
		site = data.Site
		page = data.Page
	}

	v := &PageView{
		Page:    page,
		Title:   pageTitles[page],
		Site:    site,
		Year:    r.opts.Now().Year(),
		Live:    r.opts.Live,
		Reload:  r.opts.Live && r.opts.Reload,
		BuildID: r.opts.BuildID,
	}
	for _, p := range content.Pages {
		v.Nav = append(v.Nav, NavItem{Label: pageTitles[p], Href: r.pageHref(p), Active: p == page})
	}

	if loadErr != nil {
		v.Error = loadErr.Error()
		return v
	}
	if !r.opts.Live {
		st = DefaultState()
	}

	switch page {
	case content.PageHome:
		v.Home = r.homeView(data, st)
	case content.PageMembers:
		v.Members = membersView(data.Members)
	case content.PageProjects:
		v.Projects = projectsView(data.Projects, st.Filter)
	case content.PagePublications:
		v.Publications = r.publicationsView(data.Publications, st.Filter)
	case content.PageGallery:
		v.Gallery = r.galleryView(data.Gallery, st)
	case content.PageContact:
		v.Contact = &ContactView{
			Contact:        site.Contact,
			Recruiting:     site.Recruiting,
			RecruitingBody: renderMarkdown(r.md, site.Recruiting.Body),
		}
	}
	return v
}

func (r *Renderer) homeView(data *content.PageData, st State) *HomeView {
	news := data.News
	if len(news) > r.opts.NewsLimit {
		news = news[:r.opts.NewsLimit]
	}
	h := &HomeView{Lab: data.Site.Lab, Hero: data.Site.Hero, News: news}
	if len(data.Slides) > 0 {
		h.Carousel = r.carouselSection(data.Slides, st.Slide)
	}
	return h
}

func (r *Renderer) carouselSection(slides []content.Slide, slide int) *CarouselSection {
	c := gallery.NewCarousel(slides, r.opts.SwipeThreshold)
	c.Jump(slide)
	cv := c.View()

	sec := &CarouselSection{
		Index:      cv.Index,
		Count:      cv.Count,
		IntervalMS: r.opts.Interval.Milliseconds(),
		Threshold:  r.opts.SwipeThreshold,
	}
	for i, s := range slides {
		sec.Slides = append(sec.Slides, SlideView{
			Slide:  s,
			Index:  i,
			Active: i == cv.Index,
			Anchor: "slide-" + strconv.Itoa(i),
		})
	}
	for _, d := range cv.Dots {
		sec.Dots = append(sec.Dots, DotView{Index: d.Index, Active: d.Active, Href: r.slideHref(d.Index)})
	}
	sec.PrevHref = r.slideHref(gallery.Wrap(cv.Index-1, cv.Count))
	sec.NextHref = r.slideHref(gallery.Wrap(cv.Index+1, cv.Count))
	return sec
}

func (r *Renderer) slideHref(i int) string {
	if !r.opts.Live {
		return "#slide-" + strconv.Itoa(i)
	}
	return r.pageHrefWith(content.PageHome, url.Values{"slide": {strconv.Itoa(i)}})
}

func membersView(m content.Members) *MembersView {
	return &MembersView{Groups: []MemberGroup{
		{ID: "piGrid", Title: "Principal Investigator", Members: m.PI},
		{ID: "studentGrid", Title: "Students", Members: m.Students},
		{ID: "alumniGrid", Title: "Alumni", Members: m.Alumni},
	}}
}

func projectsView(items []content.Project, f listing.Filter) *ProjectsView {
	return &ProjectsView{
		Filter:  f,
		Options: listing.ProjectOptions(items),
		Items:   listing.Projects(items, f),
		Total:   len(items),
	}
}

func (r *Renderer) publicationsView(items []content.Publication, f listing.Filter) *PublicationsView {
	filtered := listing.Publications(items, f)
	v := &PublicationsView{
		Filter:  f,
		Options: listing.PublicationOptions(items),
		Count:   len(filtered),
		Total:   len(items),
	}
	for _, g := range listing.GroupByYear(filtered) {
		group := PubGroup{Year: g.Year, Label: yearLabel(g.Year)}
		for _, p := range g.Items {
			group.Items = append(group.Items, r.pubCard(p))
		}
		v.Groups = append(v.Groups, group)
	}
	return v
}

func (r *Renderer) pubCard(p content.Publication) PubCard {
	card := PubCard{
		Publication: p,
		AuthorLine:  strings.Join(p.Authors, ", "),
		DetailHTML:  renderMarkdown(r.md, p.Detail),
	}
	if p.Year != 0 {
		card.YearLabel = strconv.Itoa(p.Year)
	}
	for _, m := range p.Marks {
		card.MarkChips = append(card.MarkChips, MarkChip{Key: m, Label: content.MarkLabel(m)})
	}
	return card
}

func yearLabel(year int) string {
	if year == 0 {
		return "Undated"
	}
	return strconv.Itoa(year)
}

func (r *Renderer) galleryView(items []content.GalleryItem, st State) *GalleryView {
	nav := gallery.NewNavigator(items)
	nav.SetFilter(st.Filter)
	filtered := nav.Filtered()

	v := &GalleryView{
		Filter:  st.Filter,
		Options: listing.GalleryOptions(items),
		Total:   len(items),
	}
	for i, it := range filtered {
		v.Cards = append(v.Cards, GalleryCard{GalleryItem: it, Index: i, Href: r.galleryHref(st.Filter, i, it)})
	}

	if r.opts.Live && st.View >= 0 {
		nav.Open(st.View)
	}
	v.Lightbox = nav.View()
	if v.Lightbox.Open {
		n := len(filtered)
		v.PrevHref = r.galleryHref(st.Filter, gallery.Wrap(v.Lightbox.Index-1, n), filtered[gallery.Wrap(v.Lightbox.Index-1, n)])
		v.NextHref = r.galleryHref(st.Filter, gallery.Wrap(v.Lightbox.Index+1, n), filtered[gallery.Wrap(v.Lightbox.Index+1, n)])
		v.Close = r.pageHrefWith(content.PageGallery, st.Filter.Values())
	}
	return v
}

// galleryHref opens item i in the server-rendered lightbox. Static builds
// link straight to the full-size image.
func (r *Renderer) galleryHref(f listing.Filter, i int, it content.GalleryItem) string {
	if !r.opts.Live {
		return it.Src
	}
	q := f.Values()
	q.Set("view", strconv.Itoa(i))
	return r.pageHrefWith(content.PageGallery, q)
}
