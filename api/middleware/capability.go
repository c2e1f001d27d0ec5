package middleware

import (
	"net/http"

	"github.com/stockpulse-app/stockpulse-backend/api/responses"
	"github.com/stockpulse-app/stockpulse-backend/internal/rbac"
	pkgerrors "github.com/stockpulse-app/stockpulse-backend/pkg/errors"
	"github.com/stockpulse-app/stockpulse-backend/pkg/logger"
)

// RequireCapability gates a route on the acting role holding the given
// capability. The matrix lookup is total, so an unknown role simply
// fails the gate.
func RequireCapability(capability rbac.Capability, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := ActingRoleFromContext(r.Context())
			if !rbac.HasCapability(role, capability) {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeForbidden, "capability required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
