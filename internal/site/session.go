package site

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/dslab/labsite/internal/content"
	"github.com/dslab/labsite/internal/gallery"
	"github.com/dslab/labsite/internal/listing"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientMessage is an input event forwarded by the browser adapter.
type clientMessage struct {
	Type   string          `json:"type"` // open, close, navigate, key, filter, jump, next, prev, pause, resume, pointerdown, pointerup, pointercancel
	Index  int             `json:"index"`
	Delta  int             `json:"delta"`
	Key    string          `json:"key"`
	X      float64         `json:"x"`
	Filter *listing.Filter `json:"filter,omitempty"`
}

// serverMessage carries a view description to the browser adapter.
type serverMessage struct {
	Type      string `json:"type"` // "view", "carousel", "reload" or "error"
	SessionID string `json:"session_id,omitempty"`
	View      any    `json:"view,omitempty"`
	Error     string `json:"error,omitempty"`
}

// session is one WebSocket connection. Writes are serialized because the
// auto-advance ticker and the read loop both send.
type session struct {
	id     string
	conn   *websocket.Conn
	logger *slog.Logger

	mu sync.Mutex
}

func (s *session) send(msg serverMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg.SessionID = s.id
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(msg); err != nil {
		s.logger.Debug("websocket write", "session", s.id, "err", err)
		return err
	}
	return nil
}

// read blocks for the next client message. Malformed messages are answered
// with an error and skipped.
func (s *session) read() (clientMessage, error) {
	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("websocket read", "session", s.id, "err", err)
			}
			return clientMessage{}, err
		}
		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			_ = s.send(serverMessage{Type: "error", Error: "invalid message format"})
			continue
		}
		return msg, nil
	}
}

// sessions tracks open connections so they can be closed on shutdown;
// hijacked connections are invisible to http.Server.Shutdown.
type sessions struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func (ss *sessions) add(c *websocket.Conn) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.conns == nil {
		ss.conns = make(map[*websocket.Conn]struct{})
	}
	ss.conns[c] = struct{}{}
}

func (ss *sessions) remove(c *websocket.Conn) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.conns, c)
}

func (ss *sessions) closeAll() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	for c := range ss.conns {
		_ = c.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		c.Close()
	}
	clear(ss.conns)
}

func (ss *sessions) count() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.conns)
}

// openSession loads page data, then upgrades the connection. A load
// failure is answered with 502 before the upgrade.
func (h *Handler) openSession(w http.ResponseWriter, r *http.Request, page content.Page) (*session, *content.PageData, bool) {
	data, err := h.loader.Load(r.Context(), page)
	if err != nil {
		h.logger.Warn("session load failed", "page", page, "err", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return nil, nil, false
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade", "err", err)
		return nil, nil, false
	}
	h.sessions.add(conn)

	s := &session{id: uuid.NewString(), conn: conn, logger: h.logger}
	h.logger.Debug("session opened", "session", s.id, "page", page)
	return s, data, true
}

func (h *Handler) closeSession(s *session) {
	h.sessions.remove(s.conn)
	s.conn.Close()
	h.logger.Debug("session closed", "session", s.id)
}

// handleGallerySession drives a lightbox Navigator. The query string
// carries the page's filter and, optionally, the open item.
func (h *Handler) handleGallerySession(w http.ResponseWriter, r *http.Request) {
	s, data, ok := h.openSession(w, r, content.PageGallery)
	if !ok {
		return
	}
	defer h.closeSession(s)

	st := StateFromValues(r.URL.Query())
	nav := gallery.NewNavigator(data.Gallery)
	nav.SetFilter(st.Filter)
	if st.View >= 0 {
		nav.Open(st.View)
	}
	if err := s.send(serverMessage{Type: "view", View: nav.View()}); err != nil {
		return
	}

	for {
		msg, err := s.read()
		if err != nil {
			return
		}
		switch msg.Type {
		case "open":
			nav.Open(msg.Index)
		case "close":
			nav.Close()
		case "navigate":
			nav.Navigate(msg.Delta)
		case "key":
			nav.HandleKey(msg.Key)
		case "filter":
			if msg.Filter != nil {
				nav.SetFilter(*msg.Filter)
			}
		default:
			_ = s.send(serverMessage{Type: "error", Error: "unknown message type: " + msg.Type})
			continue
		}
		if err := s.send(serverMessage{Type: "view", View: nav.View()}); err != nil {
			return
		}
	}
}

// handleCarouselSession drives the hero Carousel and its auto-advance
// timer. The timer is stopped when the connection ends.
func (h *Handler) handleCarouselSession(w http.ResponseWriter, r *http.Request) {
	s, data, ok := h.openSession(w, r, content.PageHome)
	if !ok {
		return
	}
	defer h.closeSession(s)

	st := StateFromValues(r.URL.Query())
	c := gallery.NewCarousel(data.Slides, h.opts.SwipeThreshold)
	c.Jump(st.Slide)
	push := func() error {
		return s.send(serverMessage{Type: "carousel", View: c.View()})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	auto := gallery.NewAutoAdvance(h.opts.Interval, func() {
		c.Next()
		_ = push()
	})
	defer auto.Stop()

	if err := push(); err != nil {
		return
	}
	if c.Len() > 1 {
		auto.Start(ctx)
	}

	for {
		msg, err := s.read()
		if err != nil {
			return
		}
		switch msg.Type {
		case "next":
			c.Next()
		case "prev":
			c.Prev()
		case "jump":
			c.Jump(msg.Index)
		case "pause":
			auto.Pause()
			c.SetPaused(true)
		case "resume":
			c.SetPaused(false)
			auto.Resume()
		case "pointerdown":
			c.PointerDown(msg.X)
			continue
		case "pointerup":
			if !c.PointerUp(msg.X) {
				continue
			}
		case "pointercancel":
			c.PointerCancel()
			continue
		default:
			_ = s.send(serverMessage{Type: "error", Error: "unknown message type: " + msg.Type})
			continue
		}
		if err := push(); err != nil {
			return
		}
	}
}
