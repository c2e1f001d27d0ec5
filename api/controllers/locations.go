package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/stockpulse-app/stockpulse-backend/api/responses"
	"github.com/stockpulse-app/stockpulse-backend/api/validators"
	"github.com/stockpulse-app/stockpulse-backend/internal/inventory"
	"github.com/stockpulse-app/stockpulse-backend/internal/session"
	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
	pkgerrors "github.com/stockpulse-app/stockpulse-backend/pkg/errors"
	"github.com/stockpulse-app/stockpulse-backend/pkg/logger"
)

// ListLocations returns the full location collection.
func ListLocations(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, sess.Locations())
	}
}

// GetLocation resolves one location by id.
func GetLocation(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc, err := sess.Location(chi.URLParam(r, "locationId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, loc)
	}
}

type locationRequest struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Address           *string `json:"address,omitempty"`
	Capacity          *int    `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	CurrentStockCount *int    `json:"currentStockCount,omitempty" validate:"omitempty,gte=0"`
	Status            *string `json:"status,omitempty"`
	ImageURL          *string `json:"imageUrl,omitempty"`
}

func (r locationRequest) toForm(id string) (inventory.LocationForm, error) {
	form := inventory.LocationForm{
		ID:                id,
		Name:              r.Name,
		Address:           r.Address,
		Capacity:          r.Capacity,
		CurrentStockCount: r.CurrentStockCount,
		ImageURL:          r.ImageURL,
	}
	if r.Status != nil {
		status, err := enums.ParseLocationStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return inventory.LocationForm{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		form.Status = &status
	}
	return form, nil
}

// CreateLocation creates a location under a fresh id.
func CreateLocation(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload locationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if payload.Name == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "name is required"))
			return
		}

		form, err := payload.toForm("")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, sess.SubmitLocation(form))
	}
}

// UpdateLocation shallow-merges the submitted fields into an existing
// location.
func UpdateLocation(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locationID := chi.URLParam(r, "locationId")
		if _, err := sess.Location(locationID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload locationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		form, err := payload.toForm(locationID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, sess.SubmitLocation(form))
	}
}
