package controllers

import (
	"net/http"
	"strings"

	"github.com/stockpulse-app/stockpulse-backend/api/responses"
	"github.com/stockpulse-app/stockpulse-backend/api/validators"
	"github.com/stockpulse-app/stockpulse-backend/internal/rbac"
	"github.com/stockpulse-app/stockpulse-backend/internal/session"
	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
	pkgerrors "github.com/stockpulse-app/stockpulse-backend/pkg/errors"
	"github.com/stockpulse-app/stockpulse-backend/pkg/logger"
)

type sessionResponse struct {
	Role           string           `json:"role"`
	ActorName      string           `json:"actorName"`
	Permissions    rbac.Permissions `json:"permissions"`
	AllowedScreens []enums.Screen   `json:"allowedScreens"`
}

func buildSessionResponse(sess *session.Session) sessionResponse {
	return sessionResponse{
		Role:           string(sess.Role()),
		ActorName:      sess.ActorName(),
		Permissions:    sess.Permissions(),
		AllowedScreens: sess.AllowedScreens(),
	}
}

// GetSession returns the acting identity: role, resolved display name,
// the full capability record and the navbar screens it unlocks.
func GetSession(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, buildSessionResponse(sess))
	}
}

type switchRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// SwitchRole changes the acting role, standing in for login. Navigation
// resets to the default screen so the new persona never lands on a view
// its navbar would not show.
func SwitchRole(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body switchRoleRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		role, err := enums.ParseRole(strings.TrimSpace(body.Role))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role"))
			return
		}

		if err := sess.SwitchRole(role); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, buildSessionResponse(sess))
	}
}

// Logout switches back to the configured post-logout role.
func Logout(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess.Logout()
		responses.WriteSuccess(w, buildSessionResponse(sess))
	}
}
