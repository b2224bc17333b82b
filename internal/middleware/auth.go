package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/cinelog/cinelog/internal/ctxkeys"
	"github.com/cinelog/cinelog/internal/render"
	"github.com/cinelog/cinelog/internal/service"
)

// RequireActiveUser guards a protected endpoint. It extracts the bearer
// token, resolves it to a user, and rejects the request when the token is
// missing, invalid, or the account is disabled. A bad token and a user that
// no longer exists are indistinguishable to the caller. The lookup runs on
// every request; nothing is cached.
func RequireActiveUser(authService *service.AuthService, userService *service.UserService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				render.Unauthorized(w, "Not authenticated")
				return
			}

			username, err := authService.VerifyJWT(token)
			if err != nil {
				render.Unauthorized(w, "Could not validate credentials")
				return
			}

			user, err := userService.ByUsername(username)
			if err != nil {
				render.Unauthorized(w, "Could not validate credentials")
				return
			}

			if user.Disabled {
				render.Error(w, http.StatusBadRequest, "Inactive user")
				return
			}

			slog.Debug("authenticated request", "user_id", user.ID, "username", user.Username)

			ctx := ctxkeys.WithUser(r.Context(), user)
			next(w, r.WithContext(ctx))
		}
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}

	return token, true
}
