package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mwhite7112/woodpantry-recipes/internal/clients"
	"github.com/mwhite7112/woodpantry-recipes/internal/service"
)

// --- POST /recipes ---

type createRecipeRequest struct {
	URL  string  `json:"url"`
	Text *string `json:"text"` // caption text; may be empty, takes effect only without url
}

func handleCreateRecipe(pipeline *service.Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRecipeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var (
			sub service.Submission
			err error
		)
		switch {
		case req.URL != "":
			sub, err = pipeline.SubmitURL(r.Context(), req.URL)
		case req.Text != nil:
			sub, err = pipeline.SubmitText(r.Context(), *req.Text, "")
		default:
			jsonError(w, "url or text is required", http.StatusBadRequest)
			return
		}

		if err != nil {
			var ferr *clients.FetchError
			if errors.As(err, &ferr) {
				jsonError(w, "failed to fetch source: "+ferr.Error(), http.StatusBadGateway, err)
				return
			}
			jsonError(w, "failed to save recipe", http.StatusInternalServerError, err)
			return
		}
		jsonStatus(w, http.StatusCreated, sub)
	}
}

// --- GET /recipes?search= ---

func handleListRecipes(store *service.RecipeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipes, err := store.Search(r.Context(), r.URL.Query().Get("search"))
		if err != nil {
			jsonError(w, "failed to list recipes", http.StatusInternalServerError, err)
			return
		}
		jsonOK(w, map[string]any{"recipes": recipes})
	}
}

// --- GET /recipes/:id ---

func handleGetRecipe(store *service.RecipeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := loadRecipe(w, r, store)
		if !ok {
			return
		}
		jsonOK(w, rec)
	}
}

// --- GET /recipes/:id/payload ---

func handleGetPayload(store *service.RecipeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := loadRecipe(w, r, store)
		if !ok {
			return
		}
		jsonOK(w, rec.Payload)
	}
}

func loadRecipe(w http.ResponseWriter, r *http.Request, store *service.RecipeStore) (service.StoredRecipe, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		jsonError(w, "invalid id", http.StatusBadRequest)
		return service.StoredRecipe{}, false
	}

	rec, err := store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			jsonError(w, "recipe not found", http.StatusNotFound)
			return service.StoredRecipe{}, false
		}
		jsonError(w, "failed to get recipe", http.StatusInternalServerError, err)
		return service.StoredRecipe{}, false
	}
	return rec, true
}
