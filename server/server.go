// Package server hosts a game for browser clients. It runs the fixed tick,
// pushes a Frame to every websocket client after each tick and applies the
// key, button and resize events they send back. All clients share one game.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/brensch/gridsnake/config"
	"github.com/brensch/gridsnake/game"
	"github.com/brensch/gridsnake/input"
	"github.com/brensch/gridsnake/render"
	"github.com/brensch/gridsnake/rules"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

//go:embed static/index.html
var static embed.FS

const (
	writeWait = 5 * time.Second
	// Client messages are small JSON events.
	maxMessageSize = 512
)

type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	mu   sync.Mutex // one writer at a time
}

func (c *client) send(f Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(f)
}

type Server struct {
	cfg      config.Config
	session  *game.Session
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[uuid.UUID]*client
}

func New(cfg config.Config, session *game.Session, logger *slog.Logger) *Server {
	return &Server{
		cfg:     cfg,
		session: session,
		logger:  logger,
		// A nil CheckOrigin rejects browsers on another origin and lets
		// clients without an Origin header through.
		upgrader: websocket.Upgrader{},
		clients: make(map[uuid.UUID]*client),
	}
}

// Handler returns the HTTP routes: the canvas page, a JSON frame and the
// websocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/state", s.handleState)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// Run ticks the game until ctx is done, then closes every client.
func (s *Server) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.Tick)
	defer ticker.Stop()
	defer s.closeAll()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.step()
		}
	}
}

func (s *Server) step() {
	if s.cfg.Autopilot {
		s.session.Steer(rules.Autopilot)
	}
	res, snap := s.session.Tick()
	if res.Died {
		s.logger.Info("game over", "score", snap.Score, "length", snap.Len(), "turn", snap.Turn)
	}
	if res.Moved {
		s.broadcast(snap)
	}
}

func (s *Server) frame(snap game.Snapshot) Frame {
	return NewFrame(snap, s.cfg.CellSize)
}

func (s *Server) broadcast(snap game.Snapshot) {
	f := s.frame(snap)

	s.mu.Lock()
	targets := make([]*client, 0, len(s.clients))
	for _, c := range s.clients {
		targets = append(targets, c)
	}
	s.mu.Unlock()

	for _, c := range targets {
		if err := c.send(f); err != nil {
			s.logger.Warn("dropping client", "client", c.id, "err", err)
			s.remove(c)
		}
	}
}

func (s *Server) remove(c *client) {
	s.mu.Lock()
	_, ok := s.clients[c.id]
	delete(s.clients, c.id)
	s.mu.Unlock()
	if ok {
		_ = c.conn.Close()
	}
}

func (s *Server) closeAll() {
	s.mu.Lock()
	clients := s.clients
	s.clients = make(map[uuid.UUID]*client)
	s.mu.Unlock()

	for _, c := range clients {
		c.mu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server stopping"),
			time.Now().Add(writeWait))
		c.mu.Unlock()
		_ = c.conn.Close()
	}
}

// ClientCount returns the number of connected websocket clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// handleIndex serves the canvas client
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// handleState returns the current frame as JSON
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.frame(s.session.Snapshot()))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)
	c := &client{id: uuid.New(), conn: conn}
	s.mu.Lock()
	s.clients[c.id] = c
	s.mu.Unlock()
	s.logger.Info("client connected", "client", c.id, "remote", r.RemoteAddr)

	if err := c.send(s.frame(s.session.Snapshot())); err != nil {
		s.logger.Warn("initial frame failed", "client", c.id, "err", err)
		s.remove(c)
		return
	}

	s.readLoop(c)
}

func (s *Server) readLoop(c *client) {
	defer func() {
		s.remove(c)
		s.logger.Info("client disconnected", "client", c.id)
	}()

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && !errors.Is(err, websocket.ErrCloseSent) {
				s.logger.Debug("read failed", "client", c.id, "err", err)
			}
			return
		}
		if err := s.handleMessage(msg); err != nil {
			s.logger.Debug("ignoring message", "client", c.id, "type", msg.Type, "err", err)
		}
	}
}

// handleMessage applies one client event. Status changes and resizes are
// pushed to every client at once; steering shows up on the next tick.
func (s *Server) handleMessage(msg Message) error {
	switch msg.Type {
	case "key", "button":
		var (
			cmd game.Command
			ok  bool
		)
		if msg.Type == "key" {
			cmd, ok = input.FromKey(msg.Key)
		} else {
			cmd, ok = input.FromButton(msg.ID)
		}
		if !ok {
			return fmt.Errorf("unbound %s %q", msg.Type, msg.Key+msg.ID)
		}
		changed, snap := s.session.Apply(cmd)
		if !changed {
			return nil
		}
		if _, steering := cmd.Direction(); !steering {
			s.logger.Info("command", "cmd", cmd.String(), "status", snap.Status().String())
			s.broadcast(snap)
		}
		return nil

	case "resize":
		if s.cfg.FixedGrid() {
			return nil
		}
		if msg.Width <= 0 || msg.Height <= 0 {
			return fmt.Errorf("bad viewport %dx%d", msg.Width, msg.Height)
		}
		rows, cols := s.cfg.GridOr(config.ClampGrid(render.ViewportGrid(msg.Width, msg.Height, s.cfg.CellSize)))
		snap := s.session.Resize(rows, cols)
		s.logger.Debug("resized", "rows", rows, "columns", cols)
		s.broadcast(snap)
		return nil

	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
}
