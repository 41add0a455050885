// internal/transport/ws/server.go
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"go-core-defense/internal/app"
)

const (
	writeWait   = 5 * time.Second
	readWait    = 60 * time.Second
	maxMessage  = 4 * 1024
	outboxDepth = 8
)

// Engine is the part of loop.Loop the transport needs.
type Engine interface {
	Submit(ctx context.Context, cmd app.Command) (app.Result, error)
	Subscribe() (<-chan *app.Snapshot, func())
	Latest() *app.Snapshot
}

type Config struct {
	CommandsPerSec float64
	CommandBurst   int
	AllowedOrigins []string
}

// Server bridges websocket clients to the simulation loop. Every client
// sees the same world; commands from all sessions are serialised by the loop.
type Server struct {
	engine   Engine
	cfg      Config
	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[string]*session

	log *slog.Logger
}

type session struct {
	id      string
	conn    *websocket.Conn
	limiter *rate.Limiter
	out     chan serverMessage
}

func NewServer(engine Engine, cfg Config) *Server {
	s := &Server{
		engine:   engine,
		cfg:      cfg,
		sessions: make(map[string]*session),
		log:      slog.With("component", "ws"),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4 * 1024,
		WriteBufferSize: 64 * 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, o := range s.cfg.AllowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// Sessions returns the number of connected clients.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			s.log.Debug("Upgrade failed", "error", err, "remote", r.RemoteAddr)
			return
		}
		defer conn.Close()
		conn.SetReadLimit(maxMessage)

		sess := &session{
			id:      uuid.NewString(),
			conn:    conn,
			limiter: rate.NewLimiter(rate.Limit(s.cfg.CommandsPerSec), s.cfg.CommandBurst),
			out:     make(chan serverMessage, outboxDepth),
		}
		s.register(sess)
		defer s.unregister(sess)
		logger := s.log.With("session", sess.id, "remote", r.RemoteAddr)
		logger.Info("Client connected")

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		sess.out <- serverMessage{Kind: KindWelcome, Session: sess.id}

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.writeLoop(ctx, cancel, sess)
		}()

		s.readLoop(ctx, sess, logger)
		cancel()
		wg.Wait()
		logger.Info("Client disconnected")
	}
}

func (s *Server) register(sess *session) {
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
}

func (s *Server) unregister(sess *session) {
	s.mu.Lock()
	delete(s.sessions, sess.id)
	s.mu.Unlock()
}

// writeLoop is the only writer on the connection.
func (s *Server) writeLoop(ctx context.Context, cancel context.CancelFunc, sess *session) {
	snapshots, unsubscribe := s.engine.Subscribe()
	defer unsubscribe()

	for {
		var msg serverMessage
		select {
		case <-ctx.Done():
			_ = sess.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
			return
		case msg = <-sess.out:
		case snap := <-snapshots:
			msg = serverMessage{Kind: KindSnapshot, Snapshot: snap}
		}
		if err := writeJSON(sess.conn, msg); err != nil {
			cancel()
			return
		}
	}
}

func (s *Server) readLoop(ctx context.Context, sess *session, logger *slog.Logger) {
	for {
		_ = sess.conn.SetReadDeadline(time.Now().Add(readWait))
		_, raw, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("Read failed", "error", err)
			}
			return
		}

		reply := s.handleMessage(ctx, sess, raw, logger)
		select {
		case sess.out <- reply:
		case <-ctx.Done():
			return
		}
	}
}

func (s *Server) handleMessage(ctx context.Context, sess *session, raw []byte, logger *slog.Logger) serverMessage {
	if err := validateCommand(raw); err != nil {
		logger.Debug("Bad message", "error", err)
		return serverMessage{Kind: KindError, Code: CodeBadMessage, Message: err.Error()}
	}
	var msg clientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return serverMessage{Kind: KindError, Code: CodeBadMessage, Message: err.Error()}
	}
	if !sess.limiter.Allow() {
		logger.Warn("Rate limit exceeded", "commands_per_sec", s.cfg.CommandsPerSec, "burst", s.cfg.CommandBurst)
		return serverMessage{Kind: KindError, Seq: msg.Seq, Code: CodeRateLimited, Message: "too many commands"}
	}

	res, err := s.engine.Submit(ctx, msg.Command)
	if err != nil {
		return serverMessage{Kind: KindError, Seq: msg.Seq, Code: CodeUnavailable, Message: err.Error()}
	}
	return serverMessage{Kind: KindResult, Seq: msg.Seq, Result: &res}
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, b)
}
