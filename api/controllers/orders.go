package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stockpulse-app/stockpulse-backend/api/responses"
	"github.com/stockpulse-app/stockpulse-backend/api/validators"
	"github.com/stockpulse-app/stockpulse-backend/internal/inventory"
	"github.com/stockpulse-app/stockpulse-backend/internal/session"
	pkgerrors "github.com/stockpulse-app/stockpulse-backend/pkg/errors"
	"github.com/stockpulse-app/stockpulse-backend/pkg/logger"
)

// orderResponse decorates an order with its derived SLA flag. The flag
// is computed against the session clock on every read, never stored.
type orderResponse struct {
	inventory.Order
	SLABreached bool `json:"slaBreached"`
}

func buildOrderResponse(order inventory.Order, now time.Time) orderResponse {
	return orderResponse{Order: order, SLABreached: order.SLABreached(now)}
}

func buildOrderResponses(orders []inventory.Order, now time.Time) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i, order := range orders {
		out[i] = buildOrderResponse(order, now)
	}
	return out
}

// ListOrders returns the full order collection.
func ListOrders(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, buildOrderResponses(sess.Orders(), sess.Now()))
	}
}

// GetOrder resolves one order by id.
func GetOrder(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := sess.Order(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, buildOrderResponse(order, sess.Now()))
	}
}

type orderRequest struct {
	ItemID     *string `json:"itemId,omitempty"`
	ItemName   *string `json:"itemName,omitempty"`
	Quantity   *int    `json:"quantity,omitempty" validate:"omitempty,min=1"`
	OrderDate  *string `json:"orderDate,omitempty"`
	ETA        *string `json:"eta,omitempty"`
	SLADueDate *string `json:"slaDueDate,omitempty"`
}

func (r orderRequest) toForm(id string) (inventory.OrderForm, error) {
	form := inventory.OrderForm{
		ID:        id,
		ItemID:    r.ItemID,
		ItemName:  r.ItemName,
		Quantity:  r.Quantity,
		OrderDate: r.OrderDate,
		ETA:       r.ETA,
	}
	if r.SLADueDate != nil {
		due, err := time.Parse(time.RFC3339, *r.SLADueDate)
		if err != nil {
			return inventory.OrderForm{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid SLA due date")
		}
		form.SLADueDate = &due
	}
	return form, nil
}

// CreateOrder creates an order in PENDING_REVIEW, attributed to the
// acting user.
func CreateOrder(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload orderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if payload.ItemID == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "itemId is required"))
			return
		}
		if payload.Quantity == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "quantity is required"))
			return
		}

		form, err := payload.toForm("")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, buildOrderResponse(sess.SubmitOrder(form), sess.Now()))
	}
}

// UpdateOrder shallow-merges the submitted fields into an existing order
// and appends an "Updated" workflow entry. Status is not editable here;
// only the workflow transitions move it.
func UpdateOrder(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderId")
		if _, err := sess.Order(orderID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload orderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		form, err := payload.toForm(orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, buildOrderResponse(sess.SubmitOrder(form), sess.Now()))
	}
}

// ApproveOrder runs the PENDING_REVIEW to APPROVED transition.
func ApproveOrder(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := sess.ApproveOrder(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, buildOrderResponse(order, sess.Now()))
	}
}

type rejectOrderRequest struct {
	Reason string `json:"reason"`
}

// RejectOrder runs the PENDING_REVIEW to REJECTED transition. The reason
// is optional; when given it lands on the workflow history entry. An
// absent body rejects with no reason.
func RejectOrder(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload rejectOrderRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := validators.DecodeJSONBody(r, &payload); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		order, err := sess.RejectOrder(chi.URLParam(r, "orderId"), payload.Reason)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, buildOrderResponse(order, sess.Now()))
	}
}

// MarkOrderOrdered runs the APPROVED to ORDERED transition.
func MarkOrderOrdered(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := sess.MarkOrderOrdered(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, buildOrderResponse(order, sess.Now()))
	}
}

// MarkOrderReceived runs the ORDERED to RECEIVED transition and books
// the received quantity onto the linked stock item.
func MarkOrderReceived(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := sess.MarkOrderReceived(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, buildOrderResponse(order, sess.Now()))
	}
}
