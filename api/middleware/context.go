package middleware

import (
	"context"

	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
)

type contextKey string

const (
	ctxActingRole contextKey = "acting_role"
	ctxActorName  contextKey = "actor_name"
)

func ActingRoleFromContext(ctx context.Context) enums.Role {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxActingRole).(enums.Role); ok {
		return v
	}
	return ""
}

func ActorNameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxActorName).(string); ok {
		return v
	}
	return ""
}

// WithActingRole injects the acting role into the context.
func WithActingRole(ctx context.Context, role enums.Role) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxActingRole, role)
}

// WithActorName injects the acting user's display name into the context.
func WithActorName(ctx context.Context, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxActorName, name)
}
