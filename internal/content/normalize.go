package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
)

// fields is a decoded JSON object whose values are read lazily with
// defaulting accessors. Every accessor tolerates a missing key or a value
// of the wrong type and returns the zero value instead.
type fields map[string]json.RawMessage

// decodeObject strips JSONC comments and decodes a top-level object.
func decodeObject(data []byte) (fields, error) {
	var f fields
	if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
		return nil, fmt.Errorf("decoding object: %w", err)
	}
	return f, nil
}

// decodeList strips JSONC comments and decodes a top-level array. Elements
// that are not objects are skipped.
func decodeList(data []byte) ([]fields, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, fmt.Errorf("decoding list: %w", err)
	}
	return objectsOf(raw), nil
}

func objectsOf(raw []json.RawMessage) []fields {
	out := make([]fields, 0, len(raw))
	for _, r := range raw {
		var f fields
		if err := json.Unmarshal(r, &f); err != nil || f == nil {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (f fields) raw(key string) json.RawMessage {
	if f == nil {
		return nil
	}
	v, ok := f[key]
	if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return nil
	}
	return v
}

// str reads a string. Numbers and booleans are formatted as text.
func (f fields) str(key string) string {
	return scalarString(f.raw(key))
}

func scalarString(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}
	return ""
}

// strList reads a list of strings. A bare string becomes a one-element
// list; non-scalar elements are dropped.
func (f fields) strList(key string) []string {
	raw := f.raw(key)
	if raw == nil {
		return []string{}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		if s := strings.TrimSpace(scalarString(raw)); s != "" {
			return []string{s}
		}
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := strings.TrimSpace(scalarString(it)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// int reads an integer. Integer-valued strings are accepted; anything
// else yields 0.
func (f fields) int(key string) int {
	raw := f.raw(key)
	if raw == nil {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if v, err := strconv.Atoi(n.String()); err == nil {
			return v
		}
		return 0
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return v
		}
	}
	return 0
}

func (f fields) obj(key string) fields {
	raw := f.raw(key)
	if raw == nil {
		return fields{}
	}
	var out fields
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return fields{}
	}
	return out
}

func (f fields) objs(key string) []fields {
	raw := f.raw(key)
	if raw == nil {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return objectsOf(items)
}

// linkOrder fixes the position of the well-known keys of the legacy
// object form of publication links.
var linkOrder = []struct{ key, label string }{
	{"pdf", "PDF"},
	{"code", "Code"},
	{"doi", "DOI"},
}

// links reads a list of {label, href}. The legacy object form
// {"pdf": url, "code": url, ...} is converted to labeled links. Entries
// without an href are dropped; a missing label falls back to the href.
func (f fields) links(key string) []Link {
	out := []Link{}
	raw := f.raw(key)
	if raw == nil {
		return out
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, item := range objectsOf(list) {
			if l, ok := newLink(item.str("label"), item.str("href")); ok {
				out = append(out, l)
			}
		}
		return out
	}

	byKey := f.obj(key)
	seen := make(map[string]bool, len(linkOrder))
	for _, k := range linkOrder {
		seen[k.key] = true
		if l, ok := newLink(k.label, byKey.str(k.key)); ok {
			out = append(out, l)
		}
	}
	rest := make([]string, 0, len(byKey))
	for k := range byKey {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		if l, ok := newLink(k, byKey.str(k)); ok {
			out = append(out, l)
		}
	}
	return out
}

func newLink(label, href string) (Link, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return Link{}, false
	}
	if strings.TrimSpace(label) == "" {
		label = href
	}
	return Link{Label: label, Href: href}, true
}

// lowerList lowercases and trims every element, dropping empties.
func lowerList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// DefaultSite returns the branding used before (or instead of) a
// successfully loaded site.json.
func DefaultSite() Site {
	return Site{
		Lab: Lab{
			Name:      "Digital Systems Lab",
			ShortName: "DSL",
			Org:       "Digital Systems Lab",
			HeroBadge: "Highlights",
			Keywords:  []string{},
		},
		FooterLinks: []Link{},
		Contact:     Contact{AddressLines: []string{}, Links: []Link{}},
		Recruiting:  Recruiting{Title: "Join Us", Items: []string{}},
	}
}

// ParseSite normalizes site.json.
func ParseSite(data []byte) (Site, error) {
	f, err := decodeObject(data)
	if err != nil {
		return Site{}, err
	}
	def := DefaultSite()

	lab := f.obj("lab")
	name := orDefault(lab.str("name"), def.Lab.Name)
	site := Site{
		Lab: Lab{
			Name:      name,
			ShortName: orDefault(lab.str("shortName"), def.Lab.ShortName),
			Org:       orDefault(lab.str("org"), name),
			Kicker:    lab.str("kicker"),
			Lead:      lab.str("lead"),
			HeroBadge: orDefault(lab.str("heroBadge"), def.Lab.HeroBadge),
			HeroNote:  lab.str("heroNote"),
			Keywords:  lab.strList("keywords"),
		},
		FooterLinks: f.links("footerLinks"),
	}

	hero := f.obj("hero")
	for _, c := range hero.objs("cta") {
		site.Hero.CTA = append(site.Hero.CTA, CTA{
			Label:   c.str("label"),
			Href:    c.str("href"),
			Primary: c.str("style") == "primary",
		})
	}
	for _, s := range hero.objs("stats") {
		site.Hero.Stats = append(site.Hero.Stats, Stat{Value: s.str("value"), Label: s.str("label")})
	}
	for _, h := range hero.objs("highlights") {
		site.Hero.Highlights = append(site.Hero.Highlights, Highlight{Title: h.str("title"), Desc: h.str("desc")})
	}

	contact := f.obj("contact")
	site.Contact = Contact{
		AddressLines: contact.strList("addressLines"),
		Email:        contact.str("email"),
		Links:        contact.links("links"),
	}

	rec := f.obj("recruiting")
	site.Recruiting = Recruiting{
		Title: orDefault(rec.str("title"), def.Recruiting.Title),
		Body:  rec.str("body"),
		Items: rec.strList("items"),
	}
	return site, nil
}

// ParseNews normalizes news.json.
func ParseNews(data []byte) ([]NewsItem, error) {
	list, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	out := make([]NewsItem, 0, len(list))
	for _, f := range list {
		item := NewsItem{Date: f.str("date"), Title: f.str("title"), Desc: f.str("desc")}
		if l := f.obj("link"); l.str("href") != "" {
			item.Link = &Link{Label: orDefault(l.str("label"), "More →"), Href: l.str("href")}
		}
		out = append(out, item)
	}
	return out, nil
}

// ParseProjects normalizes projects.json.
func ParseProjects(data []byte) ([]Project, error) {
	list, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	out := make([]Project, 0, len(list))
	for _, f := range list {
		out = append(out, Project{
			Title:   f.str("title"),
			Summary: f.str("summary"),
			Tags:    f.strList("tags"),
			Links:   f.links("links"),
		})
	}
	return out, nil
}

// ParsePublications normalizes publications.json. Source order is kept;
// sorting belongs to the listing package.
func ParsePublications(data []byte) ([]Publication, error) {
	list, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	out := make([]Publication, 0, len(list))
	for _, f := range list {
		out = append(out, Publication{
			Title:    f.str("title"),
			Authors:  authors(f),
			Venue:    f.str("venue"),
			Year:     f.int("year"),
			Type:     strings.ToLower(strings.TrimSpace(f.str("type"))),
			Region:   strings.ToLower(strings.TrimSpace(f.str("region"))),
			Marks:    lowerList(f.strList("marks")),
			Keywords: f.strList("keywords"),
			Links:    f.links("links"),
			Detail:   f.str("detail"),
		})
	}
	return out, nil
}

// authors accepts either a list or a single comma-separated string.
func authors(f fields) []string {
	list := f.strList("authors")
	if len(list) != 1 || !strings.Contains(list[0], ",") {
		return list
	}
	out := []string{}
	for _, a := range strings.Split(list[0], ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// ParseGallery normalizes gallery.json. Items without a src are dropped.
func ParseGallery(data []byte) ([]GalleryItem, error) {
	list, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	out := make([]GalleryItem, 0, len(list))
	for _, f := range list {
		src := strings.TrimSpace(f.str("src"))
		if src == "" {
			continue
		}
		out = append(out, GalleryItem{
			Src:   src,
			Thumb: orDefault(strings.TrimSpace(f.str("thumb")), src),
			Title: f.str("title"),
			Desc:  f.str("desc"),
			Date:  f.str("date"),
			Tags:  f.strList("tags"),
		})
	}
	return out, nil
}

// ParseMembers normalizes members.json. The category of each member comes
// from the collection that holds it.
func ParseMembers(data []byte) (Members, error) {
	f, err := decodeObject(data)
	if err != nil {
		return Members{}, err
	}
	return Members{
		PI:       members(f.objs("pi"), CategoryPI),
		Students: members(f.objs("students"), CategoryStudent),
		Alumni:   members(f.objs("alumni"), CategoryAlumni),
	}, nil
}

func members(list []fields, cat Category) []Member {
	out := make([]Member, 0, len(list))
	for _, f := range list {
		out = append(out, Member{
			Name:     f.str("name"),
			Role:     f.str("role"),
			Bio:      f.str("bio"),
			Photo:    strings.TrimSpace(f.str("photo")),
			Links:    f.links("links"),
			Category: cat,
		})
	}
	return out
}

// ParseSlides normalizes carousel.json. Slides without an image are
// dropped.
func ParseSlides(data []byte) ([]Slide, error) {
	list, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	out := make([]Slide, 0, len(list))
	for _, f := range list {
		img := strings.TrimSpace(f.str("img"))
		if img == "" {
			continue
		}
		out = append(out, Slide{
			Img:     img,
			Title:   f.str("title"),
			Caption: f.str("caption"),
			Link:    f.str("link"),
		})
	}
	return out, nil
}
