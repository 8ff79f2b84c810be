package listing

import (
	"slices"
	"sort"

	"github.com/dslab/labsite/internal/content"
)

// Options are the choices offered by a page's filter selects. They are
// derived once from the full, unfiltered collection.
type Options struct {
	Tags    []string `json:"tags,omitempty"`
	Years   []int    `json:"years,omitempty"`
	Types   []string `json:"types,omitempty"`
	Regions []string `json:"regions,omitempty"`
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := []string{}
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// ProjectOptions collects the tag union of every project.
func ProjectOptions(items []content.Project) Options {
	var tags []string
	for _, p := range items {
		tags = append(tags, p.Tags...)
	}
	return Options{Tags: uniqueSorted(tags)}
}

// GalleryOptions collects the tag union of every gallery item.
func GalleryOptions(items []content.GalleryItem) Options {
	var tags []string
	for _, it := range items {
		tags = append(tags, it.Tags...)
	}
	return Options{Tags: uniqueSorted(tags)}
}

// PublicationOptions collects years (non-zero, descending), types,
// regions and marks of every publication.
func PublicationOptions(items []content.Publication) Options {
	var types, regions, marks []string
	seenYear := map[int]bool{}
	years := []int{}
	for _, p := range items {
		types = append(types, p.Type)
		regions = append(regions, p.Region)
		marks = append(marks, p.Marks...)
		if p.Year != 0 && !seenYear[p.Year] {
			seenYear[p.Year] = true
			years = append(years, p.Year)
		}
	}
	slices.SortFunc(years, func(a, b int) int { return b - a })
	return Options{
		Tags:    uniqueSorted(marks),
		Years:   years,
		Types:   uniqueSorted(types),
		Regions: uniqueSorted(regions),
	}
}
