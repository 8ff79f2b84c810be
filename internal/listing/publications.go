package listing

import (
	"slices"
	"strings"

	"github.com/dslab/labsite/internal/content"
)

// YearGroup is one year heading of the publications list.
type YearGroup struct {
	Year  int                   `json:"year"`
	Items []content.Publication `json:"items"`
}

// comparePublications orders by year descending, then title ascending.
func comparePublications(a, b content.Publication) int {
	if a.Year != b.Year {
		if a.Year > b.Year {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Title, b.Title)
}

// SortPublications returns a sorted copy of pubs: newest year first, equal
// years by title. The sort is stable, so records equal on both keys keep
// their source order.
func SortPublications(pubs []content.Publication) []content.Publication {
	out := slices.Clone(pubs)
	if out == nil {
		out = []content.Publication{}
	}
	slices.SortStableFunc(out, comparePublications)
	return out
}

// GroupByYear partitions pubs into year groups ordered by descending year.
// pubs need not be sorted.
func GroupByYear(pubs []content.Publication) []YearGroup {
	groups := []YearGroup{}
	for _, p := range SortPublications(pubs) {
		if n := len(groups); n > 0 && groups[n-1].Year == p.Year {
			groups[n-1].Items = append(groups[n-1].Items, p)
			continue
		}
		groups = append(groups, YearGroup{Year: p.Year, Items: []content.Publication{p}})
	}
	return groups
}
