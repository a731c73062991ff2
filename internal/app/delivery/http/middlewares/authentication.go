package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
)

// Authenticate validates the Bearer token, checks the redis-backed session is
// still live, and stores the caller's id and role on the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		userID, role, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, userID)
		sessionToken, err := m.RedisRepository.Get(r.Context(), sessionKey)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if sessionToken == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthInvalidSession))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextKeyUserID, userID)
		ctx = context.WithValue(ctx, constvars.ContextKeyRole, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
