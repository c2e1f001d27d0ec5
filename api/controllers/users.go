package controllers

import (
	"net/http"

	"github.com/stockpulse-app/stockpulse-backend/api/responses"
	"github.com/stockpulse-app/stockpulse-backend/internal/session"
)

// ListUsers returns the sample user roster. The route is gated on the
// canEditUsers capability.
func ListUsers(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, sess.Users())
	}
}
