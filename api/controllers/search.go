package controllers

import (
	"net/http"

	"github.com/stockpulse-app/stockpulse-backend/api/responses"
	"github.com/stockpulse-app/stockpulse-backend/api/validators"
	"github.com/stockpulse-app/stockpulse-backend/internal/search"
	"github.com/stockpulse-app/stockpulse-backend/internal/session"
	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
	"github.com/stockpulse-app/stockpulse-backend/pkg/logger"
)

const (
	searchDefaultLimit = 50
	searchMaxLimit     = 200
)

type searchHit struct {
	search.Result
	StatusDisplay enums.StatusDisplay `json:"statusDisplay"`
}

type searchResponse struct {
	Query   string      `json:"query"`
	Results []searchHit `json:"results"`
}

// Search runs the global entity search. Queries under the configured
// minimum length return an empty result set, not an error.
func Search(sess *session.Session, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", searchDefaultLimit, 1, searchMaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		query := r.URL.Query().Get("q")
		results := sess.Search(query)
		if len(results) > limit {
			results = results[:limit]
		}

		hits := make([]searchHit, len(results))
		for i, result := range results {
			hits[i] = searchHit{Result: result, StatusDisplay: enums.DisplayFor(result.Status)}
		}

		responses.WriteSuccess(w, searchResponse{Query: query, Results: hits})
	}
}
