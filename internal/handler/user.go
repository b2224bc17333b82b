package handler

import (
	"net/http"

	"github.com/cinelog/cinelog/internal/ctxkeys"
	"github.com/cinelog/cinelog/internal/render"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me returns the authenticated user's record. The auth middleware has
// already resolved and validated the user.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	render.JSON(w, http.StatusOK, user)
}
