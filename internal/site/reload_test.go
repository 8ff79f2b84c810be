package site

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloadHub_Broadcast(t *testing.T) {
	hub := NewReloadHub(nil)
	ts := httptest.NewServer(hub)
	defer ts.Close()
	defer hub.Close()

	conn := dial(t, wsURL(ts.URL, "/"))
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg serverMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "reload", msg.Type)
}

func TestReloadHub_ClientLeaves(t *testing.T) {
	hub := NewReloadHub(nil)
	ts := httptest.NewServer(hub)
	defer ts.Close()

	conn := dial(t, wsURL(ts.URL, "/"))
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHandler_ReloadRoute(t *testing.T) {
	h := newTestHandler(t, writeFixture(t))
	h.opts.Reload = NewReloadHub(nil)
	ts := newTestServer(t, h)

	dial(t, wsURL(ts.URL, "/ws/reload"))
	assert.Eventually(t, func() bool { return h.opts.Reload.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatch_DebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(data, 0o755))

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{data, filepath.Join(dir, "missing")}, func() { calls.Add(1) }, nil)
	}()
	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(data, "news.json"), []byte("[]"), 0o644))
	}
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 20*time.Millisecond)
	time.Sleep(3 * reloadDebounce)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
