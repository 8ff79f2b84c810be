package gallery

import (
	"context"
	"math"
	"math/rand/v2"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dslab/labsite/internal/content"
	"github.com/dslab/labsite/internal/listing"
)

func sampleItems() []content.GalleryItem {
	return []content.GalleryItem{
		{Src: "a.jpg", Thumb: "a.jpg", Title: "Workshop", Date: "2024-05", Tags: []string{"event"}},
		{Src: "b.jpg", Thumb: "b.jpg", Desc: "Year-end party", Tags: []string{"social"}},
		{Src: "c.jpg", Thumb: "c.jpg", Title: "Demo", Date: "2023-11", Tags: []string{"event", "demo"}},
	}
}

func TestWrap(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{0, 3, 0},
		{-1, 3, 2},
		{3, 3, 0},
		{-4, 3, 2},
		{7, 3, 1},
		{5, 0, 0},
		{-5, -1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Wrap(tt.i, tt.n), "Wrap(%d, %d)", tt.i, tt.n)
	}
}

func TestNavigate_WrapsBackwards(t *testing.T) {
	nav := NewNavigator(sampleItems())
	nav.Open(0)
	nav.Navigate(-1)
	assert.Equal(t, 2, nav.Current())
	assert.Equal(t, "c.jpg", nav.View().Src)
}

func TestNavigate_AlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	deltas := []int{math.MinInt, math.MinInt + 1, math.MaxInt, -1, 1, 0}
	for range 200 {
		deltas = append(deltas, rng.IntN(1<<20)-(1<<19))
	}
	for size := 1; size <= 5; size++ {
		items := make([]content.GalleryItem, size)
		for i := range items {
			items[i] = content.GalleryItem{Src: "x", Thumb: "x"}
		}
		nav := NewNavigator(items)
		for _, d := range deltas {
			nav.Navigate(d)
			cur := nav.Current()
			require.GreaterOrEqual(t, cur, 0)
			require.Less(t, cur, size)
		}
	}
}

func TestNavigate_EmptyIsNoop(t *testing.T) {
	nav := NewNavigator(sampleItems())
	nav.Open(1)
	require.Equal(t, 0, nav.SetFilter(listing.Filter{Query: "zzz-no-match"}))
	before := nav.Current()

	nav.Navigate(-7)
	nav.Open(2)
	assert.Equal(t, before, nav.Current())
	assert.False(t, nav.IsOpen())

	empty := NewNavigator(nil)
	empty.Navigate(3)
	empty.Open(0)
	assert.Equal(t, 0, empty.Current())
	assert.False(t, empty.IsOpen())
}

func TestOpen_ClampsAndFillsView(t *testing.T) {
	nav := NewNavigator(sampleItems())

	nav.Open(99)
	v := nav.View()
	assert.True(t, v.Open)
	assert.Equal(t, 2, v.Index)
	assert.Equal(t, 3, v.Count)
	assert.Equal(t, "Demo", v.Alt)

	nav.Open(-5)
	v = nav.View()
	assert.Equal(t, 0, v.Index)
	assert.Equal(t, "2024-05", v.Desc, "description falls back to date")

	nav.Open(1)
	v = nav.View()
	assert.Equal(t, "gallery image", v.Alt)
	assert.Equal(t, "Year-end party", v.Desc)
}

func TestOpenCloseReopen_SameView(t *testing.T) {
	nav := NewNavigator(sampleItems())
	nav.Open(2)
	first := nav.View()

	nav.Close()
	closed := nav.View()
	assert.False(t, closed.Open)
	assert.Empty(t, closed.Src, "closing clears the image")

	nav.Open(2)
	assert.Equal(t, first, nav.View())
}

func TestHandleKey(t *testing.T) {
	nav := NewNavigator(sampleItems())

	assert.False(t, nav.HandleKey(KeyArrowRight), "keys are ignored while closed")
	assert.Equal(t, 0, nav.Current())

	nav.Open(0)
	assert.True(t, nav.HandleKey(KeyArrowRight))
	assert.Equal(t, 1, nav.Current())
	assert.True(t, nav.HandleKey(KeyArrowLeft))
	assert.True(t, nav.HandleKey(KeyArrowLeft))
	assert.Equal(t, 2, nav.Current())
	assert.False(t, nav.HandleKey("Enter"))
	assert.True(t, nav.HandleKey(KeyEscape))
	assert.False(t, nav.IsOpen())
}

func TestSetFilter_IndexesIntoSubset(t *testing.T) {
	nav := NewNavigator(sampleItems())
	require.Equal(t, 2, nav.SetFilter(listing.Filter{Tag: "event"}))

	nav.Open(1)
	assert.Equal(t, "c.jpg", nav.View().Src)
	nav.Navigate(1)
	assert.Equal(t, "a.jpg", nav.View().Src)
	assert.Equal(t, listing.Filter{Tag: "event"}, nav.Filter())
	assert.Len(t, nav.Filtered(), 2)
}

func TestCarousel_DotsAndJump(t *testing.T) {
	c := NewCarousel([]content.Slide{{Img: "1"}, {Img: "2"}, {Img: "3"}}, 0)
	c.Jump(2)
	dots := c.Dots()
	require.Len(t, dots, 3)
	assert.Equal(t, []Dot{{0, false}, {1, false}, {2, true}}, dots)

	c.Jump(10)
	assert.Equal(t, 2, c.Current())
	c.Next()
	assert.Equal(t, 0, c.Current())
	c.Prev()
	assert.Equal(t, 2, c.Current())

	v := c.View()
	assert.Equal(t, "3", v.Slide.Img)
	assert.Equal(t, 3, v.Count)
}

func TestCarousel_Swipe(t *testing.T) {
	c := NewCarousel([]content.Slide{{Img: "1"}, {Img: "2"}, {Img: "3"}}, DefaultSwipeThreshold)

	assert.False(t, c.PointerUp(0), "pointer up without down is ignored")

	c.PointerDown(200)
	assert.True(t, c.PointerUp(150))
	assert.Equal(t, 1, c.Current(), "left drag shows next slide")

	c.PointerDown(100)
	assert.True(t, c.PointerUp(141))
	assert.Equal(t, 0, c.Current(), "right drag shows previous slide")

	c.PointerDown(100)
	assert.False(t, c.PointerUp(125))
	assert.Equal(t, 0, c.Current(), "short drags are ignored")

	c.PointerDown(100)
	c.PointerCancel()
	assert.False(t, c.PointerUp(0))
}

func TestCarousel_Empty(t *testing.T) {
	c := NewCarousel(nil, 40)
	c.Next()
	c.Jump(3)
	c.PointerDown(0)
	assert.False(t, c.PointerUp(-100))
	v := c.View()
	assert.Equal(t, 0, v.Count)
	assert.Empty(t, v.Dots)
}

func TestAutoAdvance_TicksPausesAndStops(t *testing.T) {
	var ticks atomic.Int32
	a := NewAutoAdvance(5*time.Millisecond, func() { ticks.Add(1) })
	a.Start(context.Background())
	require.Eventually(t, func() bool { return ticks.Load() >= 2 }, time.Second, time.Millisecond)

	a.Pause()
	assert.True(t, a.Paused())
	assert.False(t, a.Running())
	paused := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, paused, ticks.Load(), "no ticks while paused")

	a.Resume()
	a.Resume()
	assert.True(t, a.Running())
	require.Eventually(t, func() bool { return ticks.Load() > paused }, time.Second, time.Millisecond)

	a.Stop()
	a.Stop()
	assert.False(t, a.Running())
	stopped := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load(), "no ticks after stop")

	a.Resume()
	a.Start(context.Background())
	assert.False(t, a.Running(), "a stopped timer cannot be restarted")
}

func TestAutoAdvance_ContextCancelStops(t *testing.T) {
	var ticks atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	a := NewAutoAdvance(time.Millisecond, func() { ticks.Add(1) })
	a.Start(ctx)
	require.Eventually(t, func() bool { return ticks.Load() > 0 }, time.Second, time.Millisecond)

	cancel()
	require.Eventually(t, func() bool { return !a.Running() }, time.Second, time.Millisecond)
	a.Stop()
}

func TestAutoAdvance_DrivesCarousel(t *testing.T) {
	c := NewCarousel([]content.Slide{{Img: "1"}, {Img: "2"}}, 0)
	a := NewAutoAdvance(2*time.Millisecond, c.Next)
	a.Start(context.Background())
	defer a.Stop()

	require.Eventually(t, func() bool { return c.Current() == 1 }, time.Second, time.Millisecond)
}
