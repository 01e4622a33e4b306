package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"StoreFront/pkg/kit"
)

const (
	maxBodyBytes = 1 << 20

	// PlaceholderToken is returned on every successful login. It is not
	// signed and nothing verifies it.
	PlaceholderToken = "sample_jwt_token"

	msgInvalidUserData    = "Invalid user data"
	msgUserExists         = "User already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgUnauthorized       = "Invalid email or password"
)

type Server struct {
	Log   *zap.Logger
	Store UserStore

	// Limiter, when set, throttles register and login per client IP.
	Limiter *kit.IPRateLimiter
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.NotFound(kit.NotFound)
	r.MethodNotAllowed(kit.MethodNotAllowed)

	if s.Limiter != nil {
		r.Use(s.Limiter.Middleware)
	}

	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)

	return r
}

type registerReq struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := decodeJSON(w, r, &req); err != nil || req.Email == nil || req.Password == nil {
		kit.WriteError(w, r, http.StatusBadRequest, msgInvalidUserData)
		return
	}

	u := User{
		Email:     *req.Email,
		Password:  *req.Password,
		CreatedAt: PlaceholderCreatedAt,
	}
	if req.Name != nil {
		u.Name = *req.Name
	}

	if err := s.Store.Create(r.Context(), u); err != nil {
		if errors.Is(err, ErrEmailExists) {
			kit.WriteError(w, r, http.StatusConflict, msgUserExists)
			return
		}
		s.internalError(w, r, "create user failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, u.Profile())
}

type loginReq struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type loginResp struct {
	Profile
	Token string `json:"token"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := decodeJSON(w, r, &req); err != nil || req.Email == nil || req.Password == nil {
		kit.WriteError(w, r, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	u, err := s.Store.Verify(r.Context(), *req.Email, *req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			kit.WriteError(w, r, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		s.internalError(w, r, "verify user failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, loginResp{Profile: u.Profile(), Token: PlaceholderToken})
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if s.Log != nil {
		s.Log.Error(msg, zap.Error(err))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, kit.MsgInternal)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(v)
}
