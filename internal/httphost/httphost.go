// Package httphost is the HTTP front end for the interpolation engine,
// grounded on the teacher's internal/web/router (chi-based routing) and
// internal/web/middleware/request_id.go (per-request UUID bound into a
// structured logger).
package httphost

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	interp "github.com/tmplcore/interpolate"
	"github.com/tmplcore/interpolate/logging"
)

type requestIDKey struct{}

// NewRouter builds the engine's HTTP API: POST /v1/interpolate and
// GET /healthz, with every request assigned a UUID and that ID bound into
// the zap logger passed to the engine.
func NewRouter(base *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)

	r.Get("/healthz", handleHealthz)
	r.Post("/v1/interpolate", handleInterpolate(base))

	return r
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

type interpolateRequest struct {
	Template string              `json:"template"`
	Context  interp.DataContext `json:"context"`
}

type interpolateResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func handleInterpolate(base *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req interpolateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}

		id := requestID(r.Context())
		logger := base.With(zap.String("request_id", id))

		out, ok := interp.Run(req.Template, req.Context, logging.Zap{L: logger})
		if !ok {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "template rendering failed"})
			return
		}

		writeJSON(w, http.StatusOK, interpolateResponse{Result: out})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
