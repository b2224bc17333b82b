package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cinelog/cinelog/internal/render"
	"github.com/cinelog/cinelog/internal/repository"
	"github.com/cinelog/cinelog/internal/service"
)

type GenreHandler struct {
	catalogService *service.CatalogService
}

func NewGenreHandler(catalogService *service.CatalogService) *GenreHandler {
	return &GenreHandler{
		catalogService: catalogService,
	}
}

func (h *GenreHandler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.catalogService.Genres()
	if err != nil {
		slog.Error("failed to list genres", "error", err)
		render.Error(w, http.StatusInternalServerError, "Failed to list genres")
		return
	}

	render.JSON(w, http.StatusOK, genres)
}

type addGenreRequest struct {
	Name string `json:"name"`
}

func (h *GenreHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addGenreRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		render.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		render.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	genre, err := h.catalogService.AddGenre(req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrConstraint) {
			render.Error(w, http.StatusConflict, "Genre violates a catalog constraint")
			return
		}
		slog.Error("failed to add genre", "error", err)
		render.Error(w, http.StatusInternalServerError, "Failed to add genre")
		return
	}

	render.JSON(w, http.StatusCreated, genre)
}
