package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskboard-dev/taskboard/internal/domain"
	jwt_internal "github.com/taskboard-dev/taskboard/internal/jwt"
	"github.com/taskboard-dev/taskboard/internal/logger"
	"github.com/taskboard-dev/taskboard/internal/utils"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// tokenFromRequest prefers the accessToken cookie; API clients without
// cookie jars use the Authorization header instead.
func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("accessToken"); err == nil {
		return cookie.Value
	}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func NeedAuth(jwtService jwt_internal.JwtService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := tokenFromRequest(r)
			if tokenStr == "" {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			}

			token, err := jwtService.DecodeToken(tokenStr)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				logger.Log.Warn("token with unexpected claims type")
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}

			uid, uidOk := claims["uid"].(float64)
			email, emailOk := claims["email"].(string)
			if !uidOk || !emailOk {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}
			admin, _ := claims["admin"].(bool)

			user := &domain.User{
				Id:    int64(uid),
				Email: email,
				Admin: admin,
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the authenticated user, nil when the
// request went through no auth middleware.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
