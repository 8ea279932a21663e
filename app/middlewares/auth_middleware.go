package middlewares

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/Rakhulsr/go-catalog/app/utils/sessions"
	"github.com/unrolled/render"
)

// Authenticate resolves the caller from a bearer token or, failing that,
// the session cookie, and stores the user id in the request context. It
// never rejects a request on its own.
func Authenticate(authSvc *services.AuthService, store sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := ""

			if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
				claims, err := authSvc.ParseToken(strings.TrimPrefix(header, "Bearer "))
				if err != nil {
					log.Printf("Authenticate: rejected bearer token: %v", err)
				} else {
					userID = claims.UserID
				}
			}
			if userID == "" && store != nil {
				userID = store.GetUserID(r)
			}

			if userID != "" {
				r = r.WithContext(context.WithValue(r.Context(), helpers.ContextKeyUserID, userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(helpers.ContextKeyUserID).(string)
	return userID
}

// RequireAuth answers 401 when Authenticate found no user.
func RequireAuth(rd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if UserIDFromContext(r.Context()) == "" {
				rd.JSON(w, http.StatusUnauthorized, map[string]string{
					"error":   "Unauthorized",
					"message": "authentication required",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
