package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"StoreFront/pkg/kit"
)

const (
	UserIDHeader = "X-User-ID"

	maxBodyBytes = 1 << 20

	msgInvalidItem     = "Invalid item data"
	msgProductNotFound = "Product not found"
	msgCartNotFound    = "Cart not found"
	msgItemNotInCart   = "Item not in cart"
	msgCartCleared     = "Cart cleared"
)

type Server struct {
	Service *Service
	Log     *zap.Logger

	// DefaultUserID keys the cart of requests without an X-User-ID header.
	// All such requests share one cart.
	DefaultUserID string
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.NotFound(kit.NotFound)
	r.MethodNotAllowed(kit.MethodNotAllowed)

	r.Get("/", s.get)
	r.Post("/", s.add)
	r.Put("/", s.replace)
	r.Delete("/", s.remove)

	return r
}

func (s *Server) userID(r *http.Request) string {
	if id := r.Header.Get(UserIDHeader); id != "" {
		return id
	}
	return s.DefaultUserID
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	lines, err := s.Service.Get(r.Context(), s.userID(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLines(w, lines)
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	item, err := decodeItem(w, r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, msgInvalidItem)
		return
	}

	lines, err := s.Service.Add(r.Context(), s.userID(r), item)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLines(w, lines)
}

func (s *Server) replace(w http.ResponseWriter, r *http.Request) {
	item, err := decodeItem(w, r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, msgInvalidItem)
		return
	}

	lines, err := s.Service.Replace(r.Context(), s.userID(r), item)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLines(w, lines)
}

// remove clears the whole cart when product_id is absent and answers with a
// message instead of the cart body.
func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	userID := s.userID(r)

	productID := r.URL.Query().Get("product_id")
	if productID == "" {
		if err := s.Service.Clear(r.Context(), userID); err != nil {
			s.writeError(w, r, err)
			return
		}
		kit.WriteMessage(w, http.StatusOK, msgCartCleared)
		return
	}

	lines, err := s.Service.RemoveItem(r.Context(), userID, productID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeLines(w, lines)
}

func decodeItem(w http.ResponseWriter, r *http.Request) (Item, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	var it Item
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		return Item{}, err
	}
	return it, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidItem):
		kit.WriteError(w, r, http.StatusBadRequest, msgInvalidItem)
	case errors.Is(err, ErrProductNotFound):
		kit.WriteError(w, r, http.StatusNotFound, msgProductNotFound)
	case errors.Is(err, ErrCartNotFound):
		kit.WriteError(w, r, http.StatusNotFound, msgCartNotFound)
	case errors.Is(err, ErrItemNotInCart):
		kit.WriteError(w, r, http.StatusNotFound, msgItemNotInCart)
	default:
		if s.Log != nil {
			s.Log.Error("cart operation failed",
				zap.Error(err),
				zap.String("method", r.Method),
				zap.String("user_id", s.userID(r)),
			)
		}
		kit.WriteError(w, r, http.StatusInternalServerError, kit.MsgInternal)
	}
}

func writeLines(w http.ResponseWriter, lines []Line) {
	if lines == nil {
		lines = []Line{}
	}
	kit.WriteJSON(w, http.StatusOK, lines)
}
