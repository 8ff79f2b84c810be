// Package gallery holds the navigation state machines behind the gallery
// lightbox and the hero carousel. Navigation is total: indices are clamped
// or wrapped, never rejected.
package gallery

import (
	"slices"
	"sync"

	"github.com/dslab/labsite/internal/content"
	"github.com/dslab/labsite/internal/listing"
)

// Keys understood by Navigator.HandleKey.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Wrap maps any index onto [0, n) with a non-negative modulo. It returns 0
// when n <= 0.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

// View is the declarative description of the lightbox. A closed lightbox
// has an empty Src so a stale image is never shown on the next open.
type View struct {
	Open  bool     `json:"open"`
	Index int      `json:"index"`
	Count int      `json:"count"`
	Src   string   `json:"src"`
	Alt   string   `json:"alt"`
	Title string   `json:"title"`
	Desc  string   `json:"desc"`
	Tags  []string `json:"tags"`
}

// Navigator tracks the filtered gallery subset and the lightbox position.
// It is safe for concurrent use.
type Navigator struct {
	mu       sync.Mutex
	items    []content.GalleryItem
	filtered []content.GalleryItem
	filter   listing.Filter
	current  int
	view     View
}

// NewNavigator creates a closed Navigator over items. The filtered subset
// starts as the full collection.
func NewNavigator(items []content.GalleryItem) *Navigator {
	items = slices.Clone(items)
	return &Navigator{
		items:    items,
		filtered: items,
		view:     View{Count: len(items), Tags: []string{}},
	}
}

// SetFilter recomputes the filtered subset, closes the lightbox and clamps
// the current index. It returns the new subset size.
func (n *Navigator) SetFilter(f listing.Filter) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.filter = f
	n.filtered = listing.Gallery(n.items, f)
	n.current = clamp(n.current, len(n.filtered))
	n.closeLocked()
	return len(n.filtered)
}

// Filter returns the active filter.
func (n *Navigator) Filter() listing.Filter {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.filter
}

// Filtered returns a copy of the current subset.
func (n *Navigator) Filtered() []content.GalleryItem {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.filtered)
}

// Current returns the index into the filtered subset.
func (n *Navigator) Current() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// IsOpen reports whether the lightbox is showing.
func (n *Navigator) IsOpen() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.view.Open
}

// View returns the current lightbox description.
func (n *Navigator) View() View {
	n.mu.Lock()
	defer n.mu.Unlock()
	v := n.view
	v.Tags = slices.Clone(v.Tags)
	return v
}

// Open shows item i of the filtered subset, clamped into range. It does
// nothing when the subset is empty.
func (n *Navigator) Open(i int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.openLocked(i)
}

// Close hides the lightbox and drops the loaded image.
func (n *Navigator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closeLocked()
}

// Navigate moves delta items through the filtered subset with wraparound
// and shows the result. It does nothing when the subset is empty.
func (n *Navigator) Navigate(delta int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	size := len(n.filtered)
	if size == 0 {
		return
	}
	n.openLocked(Wrap(n.current+delta%size, size))
}

// HandleKey applies a keyboard key while the lightbox is open and reports
// whether it was consumed. Keys are ignored while closed.
func (n *Navigator) HandleKey(key string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.view.Open {
		return false
	}
	size := len(n.filtered)
	switch key {
	case KeyEscape:
		n.closeLocked()
	case KeyArrowLeft:
		if size > 0 {
			n.openLocked(Wrap(n.current-1, size))
		}
	case KeyArrowRight:
		if size > 0 {
			n.openLocked(Wrap(n.current+1, size))
		}
	default:
		return false
	}
	return true
}

func (n *Navigator) openLocked(i int) {
	size := len(n.filtered)
	if size == 0 {
		return
	}
	n.current = clamp(i, size)
	it := n.filtered[n.current]

	alt := it.Title
	if alt == "" {
		alt = "gallery image"
	}
	desc := it.Desc
	if desc == "" {
		desc = it.Date
	}
	n.view = View{
		Open:  true,
		Index: n.current,
		Count: size,
		Src:   it.Src,
		Alt:   alt,
		Title: it.Title,
		Desc:  desc,
		Tags:  slices.Clone(it.Tags),
	}
}

func (n *Navigator) closeLocked() {
	n.view = View{Index: n.current, Count: len(n.filtered), Tags: []string{}}
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
