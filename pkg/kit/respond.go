package kit

import (
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	RequestIDHeader = "X-Request-Id"

	MsgInternal         = "Internal server error"
	MsgNotFound         = "Not found"
	MsgMethodNotAllowed = "Method not allowed"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": msg}. The request id, when chi assigned one,
// goes out as a header so the body keeps its fixed shape.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if reqID := chimw.GetReqID(r.Context()); reqID != "" {
		w.Header().Set(RequestIDHeader, reqID)
	}
	WriteJSON(w, status, ErrorResponse{Error: msg})
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, MessageResponse{Message: msg})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusNotFound, MsgNotFound)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
