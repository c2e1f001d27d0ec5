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

// ListStockItems returns the full stock item collection.
func ListStockItems(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, sess.StockItems())
	}
}

// GetStockItem resolves one stock item by id.
func GetStockItem(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := sess.StockItem(chi.URLParam(r, "itemId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

type stockItemRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	SKU         *string `json:"sku,omitempty"`
	Quantity    *int    `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	LocationID  *string `json:"locationId,omitempty"`
	ExpiryDate  *string `json:"expiryDate,omitempty"`
	Status      *string `json:"status,omitempty"`
	Supplier    *string `json:"supplier,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

func (r stockItemRequest) toForm(id string) (inventory.StockItemForm, error) {
	form := inventory.StockItemForm{
		ID:          id,
		Name:        r.Name,
		SKU:         r.SKU,
		Quantity:    r.Quantity,
		LocationID:  r.LocationID,
		ExpiryDate:  r.ExpiryDate,
		Supplier:    r.Supplier,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
	if r.Status != nil {
		status, err := enums.ParseStockStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return inventory.StockItemForm{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		form.Status = &status
	}
	return form, nil
}

// CreateStockItem creates a stock item under a fresh id.
func CreateStockItem(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload stockItemRequest
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

		responses.WriteSuccessStatus(w, http.StatusCreated, sess.SubmitStockItem(form))
	}
}

// UpdateStockItem shallow-merges the submitted fields into an existing
// item. Absent fields are left untouched.
func UpdateStockItem(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "itemId")
		if _, err := sess.StockItem(itemID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload stockItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		form, err := payload.toForm(itemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, sess.SubmitStockItem(form))
	}
}
