package middleware

import (
	"net/http"

	"github.com/cinelog/cinelog/internal/ctxkeys"
	"github.com/google/uuid"
)

// RequestID assigns each request a unique id, echoed in the X-Request-Id
// header and attached to the request context for logging.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-Id", id)

		ctx := ctxkeys.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
