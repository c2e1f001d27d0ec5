package middleware

import (
	"net/http"

	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
	"github.com/stockpulse-app/stockpulse-backend/pkg/logger"
)

// RoleSource yields the session's acting identity. Satisfied by the
// session container.
type RoleSource interface {
	Role() enums.Role
	ActorName() string
}

// ActingRole resolves the session's acting role once per request and
// carries it on the context for capability gates and log attribution.
func ActingRole(source RoleSource, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := source.Role()
			ctx := WithActingRole(r.Context(), role)
			ctx = WithActorName(ctx, source.ActorName())
			if logg != nil {
				ctx = logg.WithActingRole(ctx, string(role))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
