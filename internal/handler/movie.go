package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cinelog/cinelog/internal/ctxkeys"
	"github.com/cinelog/cinelog/internal/model"
	"github.com/cinelog/cinelog/internal/render"
	"github.com/cinelog/cinelog/internal/repository"
	"github.com/cinelog/cinelog/internal/service"
)

type MovieHandler struct {
	catalogService *service.CatalogService
}

func NewMovieHandler(catalogService *service.CatalogService) *MovieHandler {
	return &MovieHandler{
		catalogService: catalogService,
	}
}

func (h *MovieHandler) Movies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.catalogService.Movies()
	if err != nil {
		slog.Error("failed to list movies", "error", err)
		render.Error(w, http.StatusInternalServerError, "Failed to list movies")
		return
	}

	render.JSON(w, http.StatusOK, movies)
}

type addMovieRequest struct {
	Name        string  `json:"name"`
	Director    *string `json:"director"`
	IMDBScore   float64 `json:"imdb_score"`
	Popularity  float64 `json:"popularity"`
	MoviePoster string  `json:"movie_poster"`
	Genres      []int64 `json:"genres"`
}

// Add creates a movie owned by the authenticated user. A legacy author_id
// query parameter is accepted but ignored: trusting a client-supplied owner
// would let any caller create records on behalf of another account.
func (h *MovieHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req addMovieRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		render.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		render.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	movie, err := h.catalogService.AddMovie(user.ID, req.Name, req.Director, req.IMDBScore, req.Popularity, req.MoviePoster, req.Genres)
	if err != nil {
		if errors.Is(err, repository.ErrConstraint) {
			render.Error(w, http.StatusConflict, "Movie violates a catalog constraint")
			return
		}
		slog.Error("failed to add movie", "error", err, "user_id", user.ID)
		render.Error(w, http.StatusInternalServerError, "Failed to add movie")
		return
	}

	render.JSON(w, http.StatusCreated, movie)
}

func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(r.PathValue("movie_id"), 10, 64)
	if err != nil {
		render.Error(w, http.StatusBadRequest, "Invalid movie id")
		return
	}

	var upd model.MovieUpdate
	err = json.NewDecoder(r.Body).Decode(&upd)
	if err != nil {
		render.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	movie, err := h.catalogService.UpdateMovie(movieID, &upd)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			render.Error(w, http.StatusNotFound, fmt.Sprintf("Movie id %d not found", movieID))
			return
		}
		if errors.Is(err, repository.ErrConstraint) {
			render.Error(w, http.StatusConflict, "Movie violates a catalog constraint")
			return
		}
		slog.Error("failed to update movie", "error", err, "movie_id", movieID)
		render.Error(w, http.StatusInternalServerError, "Failed to update movie")
		return
	}

	render.JSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(r.PathValue("movie_id"), 10, 64)
	if err != nil {
		render.Error(w, http.StatusBadRequest, "Invalid movie id")
		return
	}

	err = h.catalogService.DeleteMovie(movieID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			render.Error(w, http.StatusNotFound, fmt.Sprintf("Movie id %d not found", movieID))
			return
		}
		slog.Error("failed to delete movie", "error", err, "movie_id", movieID)
		render.Error(w, http.StatusInternalServerError, "Failed to delete movie")
		return
	}

	render.JSON(w, http.StatusOK, map[string]string{
		"detail": fmt.Sprintf("Movie id %d successfully deleted", movieID),
	})
}

func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("search_query")

	movies, err := h.catalogService.SearchMovies(query)
	if err != nil {
		slog.Error("failed to search movies", "error", err, "query", query)
		render.Error(w, http.StatusInternalServerError, "Failed to search movies")
		return
	}

	render.JSON(w, http.StatusOK, movies)
}
