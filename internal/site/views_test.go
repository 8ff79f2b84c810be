package site

import (
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dslab/labsite/internal/content"
	"github.com/dslab/labsite/internal/listing"
)

func fixedNow() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }

func newTestRenderer(t *testing.T, live bool) *Renderer {
	t.Helper()
	r, err := NewRenderer(Options{Live: live, BuildID: "b1", Now: fixedNow})
	require.NoError(t, err)
	return r
}

func TestStateFromValues(t *testing.T) {
	st := StateFromValues(url.Values{"q": {" net "}, "view": {"2"}, "slide": {"x"}})
	assert.Equal(t, "net", st.Filter.Query)
	assert.Equal(t, 2, st.View)
	assert.Equal(t, 0, st.Slide)

	st = StateFromValues(url.Values{"view": {"-4"}})
	assert.Equal(t, -1, st.View)
}

func TestView_ErrorHasNoSections(t *testing.T) {
	r := newTestRenderer(t, true)
	data := &content.PageData{Page: content.PageGallery, Site: content.DefaultSite()}

	v := r.View(data, errors.New("Failed to load data/site.json: 500"), DefaultState())
	assert.Equal(t, "Failed to load data/site.json: 500", v.Error)
	assert.Nil(t, v.Gallery)
	assert.Equal(t, "Gallery", v.Title)
	assert.Equal(t, 2025, v.Year)
}

func TestView_NavHrefs(t *testing.T) {
	data := &content.PageData{Page: content.PageContact, Site: content.DefaultSite()}

	static := newTestRenderer(t, false).View(data, nil, DefaultState())
	require.Len(t, static.Nav, len(content.Pages))
	assert.Equal(t, "index.html", static.Nav[0].Href)
	assert.Equal(t, "contact.html", static.Nav[5].Href)
	assert.True(t, static.Nav[5].Active)

	live := newTestRenderer(t, true).View(data, nil, DefaultState())
	assert.Equal(t, "/", live.Nav[0].Href)
	assert.Equal(t, "/members", live.Nav[1].Href)
}

func TestView_StaticIgnoresState(t *testing.T) {
	data := &content.PageData{
		Page: content.PageProjects,
		Site: content.DefaultSite(),
		Projects: []content.Project{
			{Title: "Compilers", Tags: []string{"pl"}},
			{Title: "Networks", Tags: []string{"net"}},
		},
	}
	st := State{Filter: listing.Filter{Tag: "pl"}, View: -1}

	assert.Len(t, newTestRenderer(t, false).View(data, nil, st).Projects.Items, 2)
	assert.Len(t, newTestRenderer(t, true).View(data, nil, st).Projects.Items, 1)
}

func TestView_PublicationCards(t *testing.T) {
	data := &content.PageData{
		Page: content.PagePublications,
		Site: content.DefaultSite(),
		Publications: []content.Publication{
			{Title: "Old", Authors: []string{"A", "B"}, Year: 2019, Marks: []string{"best-paper"}, Detail: "Some *detail*"},
			{Title: "Draft"},
		},
	}
	v := newTestRenderer(t, true).View(data, nil, DefaultState()).Publications
	require.Len(t, v.Groups, 2)
	assert.Equal(t, "2019", v.Groups[0].Label)
	assert.Equal(t, "Undated", v.Groups[1].Label)
	assert.Empty(t, v.Groups[1].Items[0].YearLabel)

	card := v.Groups[0].Items[0]
	assert.Equal(t, "A, B", card.AuthorLine)
	require.Len(t, card.MarkChips, 1)
	assert.Equal(t, content.MarkLabel("best-paper"), card.MarkChips[0].Label)
	assert.Contains(t, string(card.DetailHTML), "<em>detail</em>")
}

func TestView_NewsLimit(t *testing.T) {
	r, err := NewRenderer(Options{NewsLimit: 2})
	require.NoError(t, err)
	data := &content.PageData{
		Page: content.PageHome,
		Site: content.DefaultSite(),
		News: []content.NewsItem{{Title: "1"}, {Title: "2"}, {Title: "3"}},
	}
	v := r.View(data, nil, DefaultState())
	assert.Len(t, v.Home.News, 2)
	assert.Nil(t, v.Home.Carousel)
}

func TestRender_ContactMarkdown(t *testing.T) {
	site := content.DefaultSite()
	site.Recruiting.Body = "We are **hiring**."
	data := &content.PageData{Page: content.PageContact, Site: site}

	var b strings.Builder
	require.NoError(t, newTestRenderer(t, false).RenderPage(&b, data, nil, DefaultState()))
	assert.Contains(t, b.String(), "<strong>hiring</strong>")
	assert.Contains(t, b.String(), `href="style.css?v=b1"`)
}

func TestRenderMarkdown_Blank(t *testing.T) {
	assert.Empty(t, renderMarkdown(newMarkdown(), "  \n "))
}
