package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mwhite7112/woodpantry-recipes/internal/service"
)

// NewRouter wires all routes.
func NewRouter(pipeline *service.Pipeline, store *service.RecipeStore) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)

	r.Post("/recipes", handleCreateRecipe(pipeline))
	r.Get("/recipes", handleListRecipes(store))
	r.Get("/recipes/{id}", handleGetRecipe(store))
	r.Get("/recipes/{id}/payload", handleGetPayload(store))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, v any) {
	jsonStatus(w, http.StatusOK, v)
}

func jsonStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// jsonError writes {"error": msg}. A cause, when given, is logged but not sent.
func jsonError(w http.ResponseWriter, msg string, status int, cause ...error) {
	if len(cause) > 0 && cause[0] != nil {
		slog.Error(msg, "status", status, "error", cause[0])
	}
	jsonStatus(w, status, map[string]string{"error": msg})
}
