// File: internal/infra/web/server.go
package web

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Server wires the widget frontend: embedded static page, the session API and
// the JWT-guarded admin surface.
type Server struct {
	hub           *Hub
	auth          *AuthManager
	adminPassword string
	log           *zerolog.Logger
}

func NewServer(hub *Hub, adminSecret, adminPassword string, secureCookies bool, logger *zerolog.Logger) *Server {
	l := logger.With().Str("component", "WebServer").Logger()
	var auth *AuthManager
	if adminSecret != "" {
		auth = NewAuthManager(adminSecret, secureCookies, 30*time.Minute)
	}
	return &Server{
		hub:           hub,
		auth:          auth,
		adminPassword: adminPassword,
		log:           &l,
	}
}

// Router assembles the chi routing tree. staticFS is the embedded widget UI
// rooted at its "static" directory.
func (s *Server) Router(staticFS fs.FS, logger *zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(Recover(logger), TraceID(), RequestLog(logger))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", s.createSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Post("/messages", s.postMessage)
			r.Get("/messages", s.pollMessages)
			r.Get("/settings", s.getSettings)
			r.Put("/settings", s.updateSettings)

			// Inspection/control surface for tooling; admin only.
			r.Group(func(r chi.Router) {
				r.Use(s.adminOnly)
				r.Get("/context", s.getContext)
				r.Post("/games", s.forceGame)
			})
		})
		r.Post("/admin/login", s.adminLogin)
	})

	r.Handle("/*", http.FileServer(http.FS(staticFS)))
	return r
}

// adminOnly rejects requests without a valid admin token. With no secret
// configured the admin surface is disabled outright.
func (s *Server) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.auth == nil {
			s.log.Warn().Msg("admin endpoint hit but admin.secret is not configured")
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		if _, err := s.auth.ParseFromRequest(r); err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
