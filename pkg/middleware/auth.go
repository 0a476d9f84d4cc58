package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"cinema-api/pkg/utils"
)

// Auth authenticates a request from the access_token cookie. The token is
// read from the raw Cookie header (any chunk containing "access_token") and
// may carry an optional "Bearer " prefix. The three failure modes are kept
// distinct: no Cookie header at all, header without a token, and a token
// that fails verification.
func Auth(tm *utils.TokenManager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookieHeader := r.Header.Get("Cookie")
			if cookieHeader == "" {
				utils.ResponseUnauthorized(w, "Cookie not found")
				return
			}

			token := ""
			for _, chunk := range strings.Split(cookieHeader, ";") {
				if strings.Contains(chunk, "access_token") {
					if _, value, found := strings.Cut(chunk, "="); found {
						token = strings.TrimSpace(value)
					}
					break
				}
			}
			if token == "" {
				utils.ResponseUnauthorized(w, "Token not found in cookies")
				return
			}

			token = strings.TrimPrefix(token, "Bearer ")

			claims, err := tm.Verify(token)
			if err != nil {
				logger.Warn("Token verification failed",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), utils.Identity{
				UserID:  claims.UserID,
				IsAdmin: claims.IsAdmin,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin rejects non-admin identities. Must run after Auth.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !identity.IsAdmin {
				logger.Warn("Non-admin access attempt",
					zap.Int64("user_id", identity.UserID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Only for admin")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
