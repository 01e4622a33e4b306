package catalog

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"StoreFront/pkg/kit"
)

const (
	msgProductNotFound  = "Product not found"
	msgCategoryRequired = "Category parameter is required"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Routes serves the product endpoints relative to their mount point
// (/api/products).
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.NotFound(kit.NotFound)
	r.MethodNotAllowed(kit.MethodNotAllowed)

	r.Get("/", s.list)
	r.Get("/related", s.related)
	r.Get("/{id}", s.get)

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := Filter{Category: q.Get("category")}
	for _, b := range []struct {
		param string
		dst   **float64
	}{
		{"min_price", &f.MinPrice},
		{"max_price", &f.MaxPrice},
	} {
		v, err := parsePrice(q.Get(b.param))
		if err != nil {
			kit.WriteError(w, r, http.StatusBadRequest, "Invalid "+b.param)
			return
		}
		*b.dst = v
	}

	products, err := s.Store.List(r.Context(), f)
	if err != nil {
		s.internalError(w, r, "list products failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := s.Store.Get(r.Context(), id)
	switch {
	case errors.Is(err, ErrProductNotFound):
		kit.WriteError(w, r, http.StatusNotFound, msgProductNotFound)
	case err != nil:
		s.internalError(w, r, "get product failed", err, zap.String("id", id))
	default:
		kit.WriteJSON(w, http.StatusOK, p)
	}
}

func (s *Server) related(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	products, err := s.Store.Related(r.Context(), q.Get("category"), q.Get("exclude_id"))
	switch {
	case errors.Is(err, ErrCategoryRequired):
		kit.WriteError(w, r, http.StatusBadRequest, msgCategoryRequired)
	case err != nil:
		s.internalError(w, r, "related products failed", err)
	default:
		kit.WriteJSON(w, http.StatusOK, products)
	}
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	if s.Log != nil {
		s.Log.Error(msg, append(fields, zap.Error(err))...)
	}
	kit.WriteError(w, r, http.StatusInternalServerError, kit.MsgInternal)
}

// parsePrice treats an empty value as "no bound".
func parsePrice(v string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(f) {
		return nil, strconv.ErrSyntax
	}
	return &f, nil
}
