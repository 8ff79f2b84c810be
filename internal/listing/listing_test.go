package listing

import (
	"fmt"
	"math/rand/v2"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dslab/labsite/internal/content"
)

func TestGroupByYear_Scenario(t *testing.T) {
	pubs := []content.Publication{
		{Title: "B", Year: 2020},
		{Title: "A", Year: 2020},
		{Title: "C", Year: 2021},
	}

	groups := GroupByYear(Publications(pubs, Filter{}))
	require.Len(t, groups, 2)
	assert.Equal(t, 2021, groups[0].Year)
	assert.Equal(t, []string{"C"}, titles(groups[0].Items))
	assert.Equal(t, 2020, groups[1].Year)
	assert.Equal(t, []string{"A", "B"}, titles(groups[1].Items))

	// Source is untouched.
	assert.Equal(t, "B", pubs[0].Title)
}

func TestGroupByYear_UnsortedInputAndYearZero(t *testing.T) {
	pubs := []content.Publication{
		{Title: "undated"},
		{Title: "x", Year: 2019},
		{Title: "y", Year: 2022},
		{Title: "w", Year: 2019},
	}
	groups := GroupByYear(pubs)
	require.Len(t, groups, 3)
	assert.Equal(t, []int{2022, 2019, 0}, []int{groups[0].Year, groups[1].Year, groups[2].Year})
	assert.Equal(t, []string{"w", "x"}, titles(groups[1].Items))
}

func TestGroupByYear_Empty(t *testing.T) {
	groups := GroupByYear(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestPublications_NoMatch(t *testing.T) {
	pubs := []content.Publication{{Title: "Alpha", Year: 2020}, {Title: "Beta", Year: 2021}}
	got := Publications(pubs, Filter{Query: "zzz-no-match"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatchPublication_Fields(t *testing.T) {
	p := content.Publication{
		Title:    "Fast Graph Kernels",
		Authors:  []string{"Kim", "Lee"},
		Venue:    "NeurIPS",
		Year:     2023,
		Type:     "conference",
		Region:   "international",
		Marks:    []string{"best"},
		Keywords: []string{"GNN"},
		Detail:   "bibtex here",
	}
	tests := []struct {
		name string
		f    Filter
		want bool
	}{
		{"empty", Filter{}, true},
		{"title case-insensitive", Filter{Query: "graph KERNELS"}, true},
		{"author", Filter{Query: "lee"}, true},
		{"venue", Filter{Query: "neurips"}, true},
		{"detail", Filter{Query: "bibtex"}, true},
		{"year text", Filter{Query: "2023"}, true},
		{"mark text", Filter{Query: "best"}, true},
		{"miss", Filter{Query: "transformer"}, false},
		{"type normalized", Filter{Type: "Conference"}, true},
		{"type other", Filter{Type: "journal"}, false},
		{"region normalized", Filter{Region: "INTERNATIONAL"}, true},
		{"region other", Filter{Region: "domestic"}, false},
		{"year", Filter{Year: "2023"}, true},
		{"year other", Filter{Year: "2022"}, false},
		{"tag keyword", Filter{Tag: "GNN"}, true},
		{"tag keyword case-sensitive", Filter{Tag: "gnn"}, false},
		{"tag mark", Filter{Tag: "BEST"}, true},
		{"conjunction", Filter{Query: "kim", Type: "conference", Year: "2023", Region: "international"}, true},
		{"conjunction one fails", Filter{Query: "kim", Type: "journal"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchPublication(p, tt.f))
		})
	}
}

func TestProjects_TagIsCaseSensitive(t *testing.T) {
	items := []content.Project{
		{Title: "Edge AI", Summary: "On-device inference", Tags: []string{"AI", "Embedded"}},
		{Title: "Storage", Summary: "Flash translation", Tags: []string{"Systems"}},
		{Title: "Compilers", Summary: "MLIR passes", Tags: []string{"ai"}},
	}
	assert.Equal(t, []string{"Edge AI"}, projectTitles(Projects(items, Filter{Tag: "AI"})))
	assert.Equal(t, []string{"Compilers"}, projectTitles(Projects(items, Filter{Tag: "ai"})))
	assert.Equal(t, []string{"Edge AI", "Compilers"}, projectTitles(Projects(items, Filter{Query: "ai"})))
	assert.Equal(t, []string{"Storage"}, projectTitles(Projects(items, Filter{Query: "FLASH"})))
	assert.Len(t, Projects(items, Filter{}), 3)
}

func TestGallery_Filter(t *testing.T) {
	items := []content.GalleryItem{
		{Src: "1", Title: "Workshop", Date: "2024-05", Tags: []string{"event"}},
		{Src: "2", Title: "Lab dinner", Desc: "Year-end", Tags: []string{"social"}},
		{Src: "3", Title: "Demo day", Date: "2023-11", Tags: []string{"event", "demo"}},
	}
	got := Gallery(items, Filter{Tag: "event"})
	assert.Equal(t, []string{"1", "3"}, []string{got[0].Src, got[1].Src})

	got = Gallery(items, Filter{Query: "2023"})
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].Src)

	got = Gallery(items, Filter{Query: "year-END"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].Src)
}

func TestSortPublications_TieBreakByTitle(t *testing.T) {
	pubs := []content.Publication{
		{Title: "b", Year: 2020},
		{Title: "B", Year: 2020},
		{Title: "a", Year: 2020},
		{Title: "z", Year: 2024},
	}
	sorted := SortPublications(pubs)
	assert.Equal(t, []string{"z", "B", "a", "b"}, titles(sorted))
}

func TestOptions(t *testing.T) {
	pubs := []content.Publication{
		{Year: 2021, Type: "journal", Region: "domestic", Marks: []string{"kci"}},
		{Year: 2023, Type: "conference", Region: "international", Marks: []string{"best", "oral"}},
		{Year: 0, Type: "", Region: ""},
		{Year: 2021, Type: "journal", Marks: []string{"oral"}},
	}
	opts := PublicationOptions(pubs)
	assert.Equal(t, []int{2023, 2021}, opts.Years)
	assert.Equal(t, []string{"conference", "journal"}, opts.Types)
	assert.Equal(t, []string{"domestic", "international"}, opts.Regions)
	assert.Equal(t, []string{"best", "kci", "oral"}, opts.Tags)

	projects := []content.Project{{Tags: []string{"b", "a"}}, {Tags: []string{"a", "c"}}}
	assert.Equal(t, []string{"a", "b", "c"}, ProjectOptions(projects).Tags)

	gallery := []content.GalleryItem{{Tags: []string{"event"}}, {}}
	assert.Equal(t, []string{"event"}, GalleryOptions(gallery).Tags)
}

func TestFilterValuesRoundTrip(t *testing.T) {
	v := url.Values{}
	v.Set("q", "  graph ")
	v.Set("year", "2023")
	f := FromValues(v)
	assert.Equal(t, Filter{Query: "graph", Year: "2023"}, f)
	assert.False(t, f.IsZero())
	assert.Equal(t, "q=graph&year=2023", f.Values().Encode())
	assert.True(t, Filter{}.IsZero())
}

// The filtered result must equal the records satisfying the conjunction of
// every active predicate, checked independently here per field.
func TestPublications_PropertyConjunction(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	words := []string{"graph", "kernel", "flash", "edge", "vision", "robot"}
	types := []string{"", "conference", "journal", "workshop"}
	regions := []string{"", "domestic", "international"}
	marks := []string{"best", "oral", "sci"}

	for iter := 0; iter < 300; iter++ {
		n := rng.IntN(12)
		pubs := make([]content.Publication, n)
		for i := range pubs {
			pubs[i] = content.Publication{
				Title:  words[rng.IntN(len(words))] + " " + words[rng.IntN(len(words))],
				Venue:  words[rng.IntN(len(words))],
				Year:   2018 + rng.IntN(5),
				Type:   types[rng.IntN(len(types))],
				Region: regions[rng.IntN(len(regions))],
				Marks:  []string{marks[rng.IntN(len(marks))]},
			}
		}
		f := Filter{}
		if rng.IntN(2) == 0 {
			f.Query = words[rng.IntN(len(words))]
		}
		if rng.IntN(2) == 0 {
			f.Type = types[rng.IntN(len(types))]
		}
		if rng.IntN(2) == 0 {
			f.Region = strings.ToUpper(regions[rng.IntN(len(regions))])
		}
		if rng.IntN(2) == 0 {
			f.Year = strconv.Itoa(2018 + rng.IntN(5))
		}
		if rng.IntN(3) == 0 {
			f.Tag = marks[rng.IntN(len(marks))]
		}

		got := Publications(pubs, f)

		var want []content.Publication
		for _, p := range pubs {
			hay := strings.ToLower(fmt.Sprintf("%s %s %s %s %s %d", p.Title, p.Venue, strings.Join(p.Marks, " "), p.Type, p.Region, p.Year))
			ok := f.Query == "" || strings.Contains(hay, f.Query)
			ok = ok && (f.Type == "" || p.Type == f.Type)
			ok = ok && (f.Region == "" || p.Region == strings.ToLower(f.Region))
			ok = ok && (f.Year == "" || strconv.Itoa(p.Year) == f.Year)
			ok = ok && (f.Tag == "" || slices.Contains(p.Marks, f.Tag))
			if ok {
				want = append(want, p)
			}
		}
		want = SortPublications(want)

		require.Equal(t, len(want), len(got), "iteration %d filter %+v", iter, f)
		for i := range want {
			require.Equal(t, want[i], got[i], "iteration %d index %d", iter, i)
		}
		for i := 1; i < len(got); i++ {
			require.LessOrEqual(t, comparePublications(got[i-1], got[i]), 0)
		}
	}
}

func TestProjects_PropertyConjunction(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	tags := []string{"AI", "ai", "Systems", "HW"}
	for iter := 0; iter < 200; iter++ {
		items := make([]content.Project, rng.IntN(10))
		for i := range items {
			items[i] = content.Project{
				Title: fmt.Sprintf("P%d", i),
				Tags:  []string{tags[rng.IntN(len(tags))]},
			}
		}
		f := Filter{}
		if rng.IntN(2) == 0 {
			f.Tag = tags[rng.IntN(len(tags))]
		}
		if rng.IntN(2) == 0 {
			f.Query = "systems"
		}
		got := Projects(items, f)

		var want []content.Project
		for _, p := range items {
			ok := f.Tag == "" || p.Tags[0] == f.Tag
			ok = ok && (f.Query == "" || strings.Contains(strings.ToLower(p.Title+" "+p.Tags[0]), f.Query))
			if ok {
				want = append(want, p)
			}
		}
		require.Equal(t, projectTitles(want), projectTitles(got), "iteration %d", iter)
	}
}

func titles(pubs []content.Publication) []string {
	out := make([]string, len(pubs))
	for i, p := range pubs {
		out[i] = p.Title
	}
	return out
}

func projectTitles(items []content.Project) []string {
	out := []string{}
	for _, p := range items {
		out = append(out, p.Title)
	}
	return out
}
