package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/logger"
	"github.com/lixenwraith/survivor/status"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server exposes the match as a read-only websocket feed at /watch
type Server struct {
	addr     string
	hub      *Hub
	interval time.Duration

	mu          sync.Mutex
	lastPublish time.Time
	httpServer  *http.Server
	listener    net.Listener
}

// NewServer creates a feed publishing at most rateHz snapshots per second
func NewServer(addr string, rateHz int, reg *status.Registry) *Server {
	if rateHz <= 0 {
		rateHz = 10
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Server{
		addr:     addr,
		hub:      NewHub(reg.Ints.Get(status.KeySpectators)),
		interval: time.Second / time.Duration(rateHz),
	}
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/watch", s.handleWatch)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start listens on the configured address and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("spectator listen %s: %w", s.addr, err)
	}

	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}

	s.mu.Lock()
	s.listener = ln
	s.httpServer = srv
	s.mu.Unlock()

	core.Go(func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.WithError(err).Error("spectator server stopped")
		}
	})
	logger.Log.WithField("addr", ln.Addr().String()).Info("spectator feed listening")
	return nil
}

// Addr returns the bound address once started
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Close disconnects spectators and shuts the listener down
func (s *Server) Close(ctx context.Context) error {
	s.hub.CloseAll()

	s.mu.Lock()
	srv := s.httpServer
	s.httpServer = nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Due reports whether a snapshot should be published at now, and records it if so
func (s *Server) Due(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.lastPublish.IsZero() && now.Sub(s.lastPublish) < s.interval {
		return false
	}
	s.lastPublish = now
	return true
}

// Publish sends snap to every spectator
func (s *Server) Publish(snap engine.Snapshot) error {
	if s.hub.Count() == 0 {
		return nil
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	s.hub.Broadcast(data)
	return nil
}

func (s *Server) Clients() int {
	return s.hub.Count()
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Warn("spectator upgrade failed")
		return
	}

	c := newClient(s.hub, conn)
	s.hub.Register(c)
	logger.Log.WithField("remote", r.RemoteAddr).Info("spectator connected")

	core.Go(c.writePump)
	core.Go(c.readPump)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
