package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/coursehub/internal/logging"
)

type RouterConfig struct {
	// BasePath prefixes every API route, e.g. "/api".
	BasePath      string
	Secret        []byte
	AllowedOrigin string
	// AuthRateLimit applies per client IP to /register and /login.
	AuthRateLimit string
	Metrics       bool
	Logger        logging.Logger
}

func NewRouter(h *Handlers, cfg RouterConfig) (http.Handler, error) {
	authLimit, err := newRateLimiter(cfg.AuthRateLimit)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(requestLogger(cfg.Logger))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(prometheusMiddleware)
	}
	r.Use(secureHeaders())
	r.Use(cors(cfg.AllowedOrigin))

	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	api := func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authLimit)
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})

		r.Get("/tutors", h.ListTutors)
		r.Post("/tutors", h.CreateTutor)
		r.Get("/ratings", h.ListRatings)
		r.Post("/ratings", h.CreateRating)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth(cfg.Secret))
			r.Get("/user", h.Profile)
			r.Get("/user/courses", h.ListEnrolled)
			r.Post("/enroll", h.Enroll)
			r.Delete("/enroll/{courseId}", h.Unenroll)
			r.Delete("/ratings/{id}", h.DeleteRating)
		})
	}

	base := strings.TrimRight(cfg.BasePath, "/")
	if base == "" {
		r.Group(api)
	} else {
		r.Route(base, api)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r, nil
}
