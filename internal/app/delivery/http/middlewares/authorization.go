package middlewares

import (
	"net/http"

	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
)

// RequireDoctor limits the route to doctor and admin callers.
func (m *Middlewares) RequireDoctor(next http.Handler) http.Handler {
	return m.requireRole(next, constvars.RoleDoctor, constvars.RoleAdmin)
}

// RequirePatient limits the route to authenticated clinic users. Doctors keep
// access so they can act on a patient's behalf at the front desk.
func (m *Middlewares) RequirePatient(next http.Handler) http.Handler {
	return m.requireRole(next, constvars.RolePatient, constvars.RoleDoctor, constvars.RoleAdmin)
}

func (m *Middlewares) requireRole(next http.Handler, allowedRoles ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := r.Context().Value(constvars.ContextKeyRole).(string)
		if !ok || role == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				next.ServeHTTP(w, r)
				return
			}
		}
		utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(nil))
	})
}
