package controllers

import (
	"net/http"
	"strings"

	"github.com/stockpulse-app/stockpulse-backend/api/responses"
	"github.com/stockpulse-app/stockpulse-backend/api/validators"
	"github.com/stockpulse-app/stockpulse-backend/internal/session"
	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
	pkgerrors "github.com/stockpulse-app/stockpulse-backend/pkg/errors"
	"github.com/stockpulse-app/stockpulse-backend/pkg/logger"
)

// GetView returns the current routing snapshot without moving anywhere.
func GetView(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, sess.CurrentView())
	}
}

type navigateRequest struct {
	Screen string            `json:"screen" validate:"required"`
	Params map[string]string `json:"params,omitempty"`
}

// Navigate pushes the current screen onto history and moves to the
// target. Re-navigating to the identical screen and params is a no-op.
func Navigate(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body navigateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		screen, err := enums.ParseScreen(strings.TrimSpace(body.Screen))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid screen"))
			return
		}

		view, err := sess.Navigate(screen, body.Params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithScreen(r.Context(), string(view.Screen)), "view.navigate")
		}
		responses.WriteSuccess(w, view)
	}
}

// GoBack pops one history entry, or falls back to the default screen
// when history is empty.
func GoBack(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, sess.GoBack())
	}
}

type breadcrumbRequest struct {
	Index *int `json:"index" validate:"required,gte=0"`
}

// JumpToBreadcrumb jumps to a history entry by index, truncating the
// abandoned forward path.
func JumpToBreadcrumb(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body breadcrumbRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := sess.JumpToHistory(*body.Index)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}
