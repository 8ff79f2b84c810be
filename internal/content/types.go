package content

import (
	"strings"
	"unicode/utf8"
)

// Link is a labeled hyperlink attached to a record.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// External reports whether the link leaves the site. External links open
// in a new tab.
func (l Link) External() bool {
	h := strings.ToLower(l.Href)
	return strings.HasPrefix(h, "http://") || strings.HasPrefix(h, "https://")
}

// Lab holds the branding block of site.json.
type Lab struct {
	Name      string   `json:"name"`
	ShortName string   `json:"shortName"`
	Org       string   `json:"org"`
	Kicker    string   `json:"kicker"`
	Lead      string   `json:"lead"`
	HeroBadge string   `json:"heroBadge"`
	HeroNote  string   `json:"heroNote"`
	Keywords  []string `json:"keywords"`
}

// CTA is a hero call-to-action button.
type CTA struct {
	Label   string `json:"label"`
	Href    string `json:"href"`
	Primary bool   `json:"primary"`
}

// Stat is a hero statistic box.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Highlight is a hero feature card.
type Highlight struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// Hero holds the home page hero content.
type Hero struct {
	CTA        []CTA       `json:"cta"`
	Stats      []Stat      `json:"stats"`
	Highlights []Highlight `json:"highlights"`
}

// Contact holds the contact page address card.
type Contact struct {
	AddressLines []string `json:"addressLines"`
	Email        string   `json:"email"`
	Links        []Link   `json:"links"`
}

// Recruiting holds the contact page recruiting card. Body is markdown.
type Recruiting struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Items []string `json:"items"`
}

// Site is the branding and contact document shared by every page.
type Site struct {
	Lab         Lab        `json:"lab"`
	Hero        Hero       `json:"hero"`
	FooterLinks []Link     `json:"footerLinks"`
	Contact     Contact    `json:"contact"`
	Recruiting  Recruiting `json:"recruiting"`
}

// NewsItem is one entry of news.json.
type NewsItem struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Link  *Link  `json:"link,omitempty"`
}

// Project is one entry of projects.json.
type Project struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Tags    []string `json:"tags"`
	Links   []Link   `json:"links"`
}

// Publication is one entry of publications.json. Type, Region and Marks are
// lowercase; Year is 0 when the source value is missing or not an integer.
type Publication struct {
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	Venue    string   `json:"venue"`
	Year     int      `json:"year"`
	Type     string   `json:"type"`
	Region   string   `json:"region"`
	Marks    []string `json:"marks"`
	Keywords []string `json:"keywords"`
	Links    []Link   `json:"links"`
	Detail   string   `json:"detail,omitempty"`
}

// GalleryItem is one entry of gallery.json. Thumb is never empty after
// normalization.
type GalleryItem struct {
	Src   string   `json:"src"`
	Thumb string   `json:"thumb"`
	Title string   `json:"title"`
	Desc  string   `json:"desc"`
	Date  string   `json:"date"`
	Tags  []string `json:"tags"`
}

// Category places a member in one of the three member grids.
type Category string

const (
	CategoryPI      Category = "pi"
	CategoryStudent Category = "student"
	CategoryAlumni  Category = "alumni"
)

// Member is one person in members.json.
type Member struct {
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Bio      string   `json:"bio"`
	Photo    string   `json:"photo,omitempty"`
	Links    []Link   `json:"links"`
	Category Category `json:"category"`
}

// Initials returns the avatar fallback shown when a member has no photo:
// the first two characters of the trimmed name, uppercased.
func (m Member) Initials() string {
	name := strings.TrimSpace(m.Name)
	if name == "" {
		return "M"
	}
	if utf8.RuneCountInString(name) > 2 {
		name = string([]rune(name)[:2])
	}
	return strings.ToUpper(name)
}

// HasPhoto reports whether the member carries a non-blank photo path.
func (m Member) HasPhoto() bool {
	return strings.TrimSpace(m.Photo) != ""
}

// Members groups the three member collections of members.json.
type Members struct {
	PI       []Member `json:"pi"`
	Students []Member `json:"students"`
	Alumni   []Member `json:"alumni"`
}

// All returns every member in grid order.
func (m Members) All() []Member {
	all := make([]Member, 0, len(m.PI)+len(m.Students)+len(m.Alumni))
	all = append(all, m.PI...)
	all = append(all, m.Students...)
	return append(all, m.Alumni...)
}

// Slide is one hero carousel slide.
type Slide struct {
	Img     string `json:"img"`
	Title   string `json:"title"`
	Caption string `json:"caption"`
	Link    string `json:"link"`
}
