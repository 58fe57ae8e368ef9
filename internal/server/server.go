package server

import (
	"net/http"

	logger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"ordergate/internal/config"
	"ordergate/internal/handlers"
	"ordergate/internal/handlers/auth"
	"ordergate/internal/middleware"
	"ordergate/internal/proxy"
	"ordergate/internal/store"
)

type Server struct {
	Addr  string
	Users store.UserStore
	Cfg   *config.Config
	Log   *logrus.Logger
}

func NewServer(addr string, users store.UserStore, cfg *config.Config, log *logrus.Logger) *Server {
	return &Server{
		Addr:  addr,
		Users: users,
		Cfg:   cfg,
		Log:   log,
	}
}

func HandlerFunc(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}

// Router builds the full route table. Split out from Run so tests can
// mount it on httptest servers.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	// middlewares
	r.Use(logger.Logger("router", s.Log))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// auth routes
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", HandlerFunc(&auth.SignupHandler{
			Users:     s.Users,
			JWTSecret: s.Cfg.JWTSecret,
			JWTExpiry: s.Cfg.JWTExpiry,
		}))
		r.Post("/login", HandlerFunc(&auth.LoginHandler{
			Users:     s.Users,
			JWTSecret: s.Cfg.JWTSecret,
			JWTExpiry: s.Cfg.JWTExpiry,
		}))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(s.Cfg.JWTSecret, s.Users))
			r.Get("/profile", HandlerFunc(&auth.ProfileHandler{}))
			r.Put("/profile", HandlerFunc(&auth.UpdateProfileHandler{Users: s.Users}))
		})
	})

	// proxy routes forwarded to the backend
	fwd := proxy.NewForwarder(s.Cfg.BackendURL, s.Log)
	for _, rt := range proxy.Whitelist {
		r.Method(rt.Method, rt.Path, fwd.Handler(rt.Method, rt.Path))
	}

	r.Get("/health", HandlerFunc(&handlers.HealthHandler{BackendURL: s.Cfg.BackendURL}))

	// anything else, including method mismatches on known paths
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.NotFound)

	return r
}

func (s *Server) Run() error {
	s.Log.Infof("server running on %s, forwarding to %s", s.Addr, s.Cfg.BackendURL)
	return http.ListenAndServe(s.Addr, s.Router())
}
