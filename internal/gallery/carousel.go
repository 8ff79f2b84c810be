package gallery

import (
	"slices"
	"sync"

	"github.com/dslab/labsite/internal/content"
)

// DefaultSwipeThreshold is the horizontal drag distance, in CSS pixels,
// that counts as a swipe.
const DefaultSwipeThreshold = 40

// Dot is one carousel indicator.
type Dot struct {
	Index  int  `json:"index"`
	Active bool `json:"active"`
}

// CarouselView is the declarative description of the carousel.
type CarouselView struct {
	Index  int           `json:"index"`
	Count  int           `json:"count"`
	Slide  content.Slide `json:"slide"`
	Dots   []Dot         `json:"dots"`
	Paused bool          `json:"paused"`
}

// Carousel is a cyclic navigator over a fixed slide list with indicator
// dots and swipe detection. It is safe for concurrent use; the
// auto-advance ticker and input events may drive it from different
// goroutines.
type Carousel struct {
	mu        sync.Mutex
	slides    []content.Slide
	current   int
	threshold float64
	dragging  bool
	startX    float64
	paused    bool
}

// NewCarousel creates a Carousel at slide 0. A non-positive threshold uses
// DefaultSwipeThreshold.
func NewCarousel(slides []content.Slide, swipeThreshold float64) *Carousel {
	if swipeThreshold <= 0 {
		swipeThreshold = DefaultSwipeThreshold
	}
	return &Carousel{slides: slices.Clone(slides), threshold: swipeThreshold}
}

// Len returns the number of slides.
func (c *Carousel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.slides)
}

// Current returns the active slide index.
func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Navigate moves delta slides with wraparound. No-op without slides.
func (c *Carousel) Navigate(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n := len(c.slides); n > 0 {
		c.current = Wrap(c.current+delta%n, n)
	}
}

// Next advances one slide.
func (c *Carousel) Next() { c.Navigate(1) }

// Prev goes back one slide.
func (c *Carousel) Prev() { c.Navigate(-1) }

// Jump shows slide i, clamped into range.
func (c *Carousel) Jump(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = clamp(i, len(c.slides))
}

// PointerDown records the start of a drag at horizontal position x.
func (c *Carousel) PointerDown(x float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragging = true
	c.startX = x
}

// PointerUp ends a drag at x. A leftward drag of at least the threshold
// shows the next slide, a rightward one the previous slide. It reports
// whether the slide changed. A PointerUp without a PointerDown is ignored.
func (c *Carousel) PointerUp(x float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dragging {
		return false
	}
	c.dragging = false
	n := len(c.slides)
	if n == 0 {
		return false
	}
	dx := x - c.startX
	switch {
	case dx <= -c.threshold:
		c.current = Wrap(c.current+1, n)
	case dx >= c.threshold:
		c.current = Wrap(c.current-1, n)
	default:
		return false
	}
	return true
}

// PointerCancel abandons a drag.
func (c *Carousel) PointerCancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragging = false
}

// SetPaused records whether auto-advance is paused for display.
func (c *Carousel) SetPaused(p bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = p
}

// Dots returns one indicator per slide with the current one active.
func (c *Carousel) Dots() []Dot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dotsLocked()
}

func (c *Carousel) dotsLocked() []Dot {
	dots := make([]Dot, len(c.slides))
	for i := range dots {
		dots[i] = Dot{Index: i, Active: i == c.current}
	}
	return dots
}

// View returns the current carousel description.
func (c *Carousel) View() CarouselView {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := CarouselView{
		Index:  c.current,
		Count:  len(c.slides),
		Dots:   c.dotsLocked(),
		Paused: c.paused,
	}
	if len(c.slides) > 0 {
		v.Slide = c.slides[c.current]
	}
	return v
}
