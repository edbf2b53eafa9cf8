// Package feed streams court snapshots to websocket viewers. Viewers only
// watch; anything they send is discarded.
package feed

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"

	"github.com/jtestard/go-pong/pong"
)

// backlog is how many snapshots a slow viewer may fall behind before frames
// are dropped for it.
const backlog = 8

type viewer struct {
	send chan pong.Snapshot
	addr string
}

// Hub fans snapshots out to every connected viewer. Publish never blocks.
type Hub struct {
	log *zap.Logger

	mu      sync.Mutex
	viewers map[*viewer]struct{}
	last    *pong.Snapshot
}

// NewHub creates an empty hub. A nil logger disables logging.
func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{log: log, viewers: make(map[*viewer]struct{})}
}

// Handler returns the websocket endpoint.
func (h *Hub) Handler() http.Handler {
	return websocket.Server{Handler: websocket.Handler(h.serve)}
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// Publish queues s for every viewer, dropping it for viewers whose queue is
// full.
func (h *Hub) Publish(s pong.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = &s
	for v := range h.viewers {
		select {
		case v.send <- s:
		default:
			h.log.Debug("dropping frame", zap.String("viewer", v.addr))
		}
	}
}

func (h *Hub) register(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.viewers[v] = struct{}{}
	if h.last != nil {
		v.send <- *h.last
	}
}

func (h *Hub) unregister(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.viewers, v)
}

func (h *Hub) serve(ws *websocket.Conn) {
	defer ws.Close()

	v := &viewer{send: make(chan pong.Snapshot, backlog), addr: ws.Request().RemoteAddr}
	h.register(v)
	defer h.unregister(v)
	h.log.Info("viewer connected", zap.String("viewer", v.addr))

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		var discard []byte
		for {
			if err := websocket.Message.Receive(ws, &discard); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case s := <-v.send:
			if err := websocket.JSON.Send(ws, s); err != nil {
				h.log.Info("viewer disconnected", zap.String("viewer", v.addr), zap.Error(err))
				return
			}
		case <-closed:
			h.log.Info("viewer disconnected", zap.String("viewer", v.addr))
			return
		}
	}
}

// ListenAndServe serves the hub on addr until ctx is done.
func ListenAndServe(ctx context.Context, addr string, h *Hub) error {
	mux := http.NewServeMux()
	mux.Handle("/", h.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrapf(err, "feed listen %s", addr)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "feed shutdown")
		}
		return nil
	}
}
