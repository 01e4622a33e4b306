package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"StoreFront/internal/auth"
	"StoreFront/internal/cart"
	"StoreFront/internal/catalog"
	"StoreFront/pkg/kit"
)

const (
	readyTimeout = 1 * time.Second

	helloMessage = "Hello from Flask!"
)

type Deps struct {
	Catalog catalog.Store
	Carts   *cart.Service
	Users   auth.UserStore

	DefaultUserID string
	AuthLimiter   *kit.IPRateLimiter
}

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
	CORSOrigins    []string
}

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	log := httpDeps.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	setupMiddleware(r, httpDeps, log)
	setupMetrics(r, httpDeps)

	r.NotFound(kit.NotFound)
	r.MethodNotAllowed(kit.MethodNotAllowed)

	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(deps.Catalog, log))

	catalogSrv := &catalog.Server{Store: deps.Catalog, Log: log}
	cartSrv := &cart.Server{Service: deps.Carts, Log: log, DefaultUserID: deps.DefaultUserID}
	authSrv := &auth.Server{Store: deps.Users, Log: log, Limiter: deps.AuthLimiter}

	r.Route("/api", func(ar chi.Router) {
		ar.Mount("/products", catalogSrv.Routes())
		ar.Mount("/cart", cartSrv.Routes())
		ar.Mount("/auth", authSrv.Routes())
		ar.Get("/hello", hello)
	})

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps, log *zap.Logger) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer(log))
	r.Use(kit.Logging(log))
	if len(deps.CORSOrigins) > 0 {
		r.Use(kit.CORS(deps.CORSOrigins))
	}
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func readyz(store catalog.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			log.Warn("readyz failed: catalog", zap.Error(err))
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready")
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func hello(w http.ResponseWriter, _ *http.Request) {
	kit.WriteMessage(w, http.StatusOK, helloMessage)
}
