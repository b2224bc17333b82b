package routes

import (
	"net/http"

	"github.com/cinelog/cinelog/internal/app"
	"github.com/cinelog/cinelog/internal/handler"
	"github.com/cinelog/cinelog/internal/middleware"
)

func SetupRoutes(a *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler()
	auth := handler.NewAuthHandler(a.AuthService)
	user := handler.NewUserHandler()
	movie := handler.NewMovieHandler(a.CatalogService)
	genre := handler.NewGenreHandler(a.CatalogService)

	requireAuth := middleware.RequireActiveUser(a.AuthService, a.UserService)
	rateLimiter := middleware.RateLimitLogin()

	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /{$}", health.Ping)
	mux.HandleFunc("POST /token", rateLimiter(auth.Token))
	mux.HandleFunc("GET /all_movies", movie.Movies)
	mux.HandleFunc("GET /search", movie.Search)
	mux.HandleFunc("GET /genres", genre.Genres)

	// Protected
	mux.HandleFunc("GET /users/me", requireAuth(user.Me))
	mux.HandleFunc("POST /add_movie", requireAuth(movie.Add))
	mux.HandleFunc("PUT /update_movie/{movie_id}", requireAuth(movie.Update))
	mux.HandleFunc("DELETE /delete_movie/{movie_id}", requireAuth(movie.Delete))
	mux.HandleFunc("POST /genres", requireAuth(genre.Add))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.RequestLogging,
	)
}
