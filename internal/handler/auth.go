package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cinelog/cinelog/internal/render"
	"github.com/cinelog/cinelog/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token handles POST /token. Credentials arrive as form fields; a single
// error covers both unknown username and wrong password.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		render.Error(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		render.Error(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.authService.Login(username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			render.Unauthorized(w, "Incorrect username or password")
			return
		}
		slog.Error("login failed", "error", err, "username", username)
		render.Error(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	render.JSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
