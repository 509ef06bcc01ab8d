package httpapi

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"github.com/farooqu/cooklang-store/internal/core/domain"
	"github.com/farooqu/cooklang-store/internal/core/ports/driving"
	"github.com/farooqu/cooklang-store/internal/logger"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:      "ok",
		RecipeCount: len(s.svc.ListAll(r.Context())),
		Categories:  len(s.svc.Categories(r.Context())),
	})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("invalid request body", err))
		return
	}
	recipe, err := s.svc.Create(r.Context(), req.Content, req.Category)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDetail(recipe))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writePage(w, r, s.svc.ListAll(r.Context()))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, domain.NewValidationError("missing query parameter q", nil))
		return
	}
	writePage(w, r, s.svc.SearchByName(r.Context(), query))
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	ingredient := r.URL.Query().Get("ingredient")
	if ingredient == "" {
		writeError(w, domain.NewValidationError("missing query parameter ingredient", nil))
		return
	}
	writePage(w, r, s.svc.FilterByIngredient(r.Context(), ingredient))
}

func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	path, err := s.svc.ResolveID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	recipe, err := s.svc.Read(r.Context(), path)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDetail(recipe))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	path, err := s.svc.ResolveID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("invalid request body", err))
		return
	}
	recipe, err := s.svc.Update(r.Context(), path, driving.UpdateRecipe{
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDetail(recipe))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	path, err := s.svc.ResolveID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.svc.Delete(r.Context(), path); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories := s.svc.Categories(r.Context())
	writeJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	writePage(w, r, s.svc.ListByCategory(r.Context(), name))
}

// writePage sorts, paginates and writes a listing. Sorting happens here
// because the index iterates in no particular order.
func writePage(w http.ResponseWriter, r *http.Request, recipes []domain.Recipe) {
	sort.Slice(recipes, func(i, j int) bool {
		if recipes[i].Title != recipes[j].Title {
			return recipes[i].Title < recipes[j].Title
		}
		return recipes[i].Path < recipes[j].Path
	})

	limit, offset, err := pageParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	total := len(recipes)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	writeJSON(w, http.StatusOK, recipeList{
		Recipes: toSummaries(recipes[offset:end]),
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

func pageParams(r *http.Request) (limit, offset int, err error) {
	limit = defaultPageLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return 0, 0, domain.NewValidationError("invalid limit", err)
		}
		if limit > maxPageLimit {
			limit = maxPageLimit
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, domain.NewValidationError("invalid offset", err)
		}
	}
	return limit, offset, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("http: encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	case domain.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	default:
		logger.Error("http: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "internal_error",
			Message: "internal server error",
		})
	}
}
