// internal/transport/ws/handler.go
package ws

import (
	"encoding/json"
	"net/http"

	"github.com/rs/cors"
)

// NewHandler returns the HTTP surface: /ws for live play, /snapshot for the
// latest world state and /healthz. CORS covers the plain HTTP routes.
func (s *Server) NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", s.Handler())
	mux.HandleFunc("/snapshot", s.handleSnapshot)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	s.log.Info("HTTP routes configured", "allowed_origins", s.cfg.AllowedOrigins)
	return c.Handler(mux)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	snap := s.engine.Latest()
	if snap == nil {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		s.log.Error("Snapshot encode failed", "error", err)
	}
}
