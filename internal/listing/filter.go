// Package listing filters, sorts and groups the record collections shown
// on the projects, publications and gallery pages. Every function here is
// pure: inputs are never mutated and results are freshly allocated.
package listing

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/dslab/labsite/internal/content"
)

// Filter is the state of a page's filter controls. The zero value matches
// every record.
type Filter struct {
	Query  string `json:"q,omitempty"`
	Tag    string `json:"tag,omitempty"`
	Type   string `json:"type,omitempty"`
	Region string `json:"region,omitempty"`
	Year   string `json:"year,omitempty"`
}

// FromValues reads a Filter from URL query parameters q, tag, type, region
// and year.
func FromValues(v url.Values) Filter {
	return Filter{
		Query:  strings.TrimSpace(v.Get("q")),
		Tag:    strings.TrimSpace(v.Get("tag")),
		Type:   strings.TrimSpace(v.Get("type")),
		Region: strings.TrimSpace(v.Get("region")),
		Year:   strings.TrimSpace(v.Get("year")),
	}
}

// Values encodes the active fields of f as URL query parameters.
func (f Filter) Values() url.Values {
	v := url.Values{}
	set := func(k, s string) {
		if s != "" {
			v.Set(k, s)
		}
	}
	set("q", f.Query)
	set("tag", f.Tag)
	set("type", f.Type)
	set("region", f.Region)
	set("year", f.Year)
	return v
}

// IsZero reports whether no filter is active.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

func (f Filter) needle() string {
	return strings.ToLower(strings.TrimSpace(f.Query))
}

// matchText reports whether the lowercased haystack contains needle. An
// empty needle matches.
func matchText(needle string, parts ...string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(parts, " ")), needle)
}

// selectWhere returns the records satisfying keep, in source order.
func selectWhere[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Projects returns the projects matching f in source order. Text matches
// title, summary and tags; Tag must equal one of the project's tags
// exactly.
func Projects(items []content.Project, f Filter) []content.Project {
	q := f.needle()
	tag := strings.TrimSpace(f.Tag)
	return selectWhere(items, func(p content.Project) bool {
		return matchText(q, p.Title, p.Summary, strings.Join(p.Tags, " ")) &&
			(tag == "" || slices.Contains(p.Tags, tag))
	})
}

// Gallery returns the gallery items matching f in source order. Text
// matches title, description, date and tags; Tag must equal one of the
// item's tags exactly.
func Gallery(items []content.GalleryItem, f Filter) []content.GalleryItem {
	q := f.needle()
	tag := strings.TrimSpace(f.Tag)
	return selectWhere(items, func(it content.GalleryItem) bool {
		return matchText(q, it.Title, it.Desc, it.Date, strings.Join(it.Tags, " ")) &&
			(tag == "" || slices.Contains(it.Tags, tag))
	})
}

// MatchPublication reports whether p satisfies every active field of f.
// Type and region compare case-insensitively; tag matches a keyword
// exactly or a mark case-insensitively.
func MatchPublication(p content.Publication, f Filter) bool {
	year := ""
	if p.Year != 0 {
		year = strconv.Itoa(p.Year)
	}
	if !matchText(f.needle(), p.Title, strings.Join(p.Authors, " "), p.Venue, p.Detail,
		strings.Join(p.Keywords, " "), strings.Join(p.Marks, " "), p.Type, p.Region, year) {
		return false
	}
	if t := strings.ToLower(strings.TrimSpace(f.Type)); t != "" && p.Type != t {
		return false
	}
	if r := strings.ToLower(strings.TrimSpace(f.Region)); r != "" && p.Region != r {
		return false
	}
	if y := strings.TrimSpace(f.Year); y != "" && strconv.Itoa(p.Year) != y {
		return false
	}
	if tag := strings.TrimSpace(f.Tag); tag != "" &&
		!slices.Contains(p.Keywords, tag) && !slices.Contains(p.Marks, strings.ToLower(tag)) {
		return false
	}
	return true
}

// Publications returns the publications matching f, sorted by
// SortPublications.
func Publications(items []content.Publication, f Filter) []content.Publication {
	return SortPublications(selectWhere(items, func(p content.Publication) bool {
		return MatchPublication(p, f)
	}))
}
