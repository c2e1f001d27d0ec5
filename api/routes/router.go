package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stockpulse-app/stockpulse-backend/api/controllers"
	"github.com/stockpulse-app/stockpulse-backend/api/middleware"
	"github.com/stockpulse-app/stockpulse-backend/internal/rbac"
	"github.com/stockpulse-app/stockpulse-backend/internal/session"
	"github.com/stockpulse-app/stockpulse-backend/pkg/config"
	"github.com/stockpulse-app/stockpulse-backend/pkg/logger"
	"github.com/stockpulse-app/stockpulse-backend/pkg/metrics"
)

// NewRouter wires the full API surface around the single application
// session.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	sess *session.Session,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	httpMetrics := metrics.NewHTTPMetrics(registry)

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.ActingRole(sess, logg))

		r.Route("/session", func(r chi.Router) {
			r.Get("/", controllers.GetSession(sess))
			r.Post("/role", controllers.SwitchRole(sess, logg))
			r.Post("/logout", controllers.Logout(sess))
		})

		r.Route("/view", func(r chi.Router) {
			r.Get("/", controllers.GetView(sess))
			r.Post("/navigate", controllers.Navigate(sess, logg))
			r.Post("/back", controllers.GoBack(sess))
			r.Post("/breadcrumb", controllers.JumpToBreadcrumb(sess, logg))
		})

		r.Get("/search", controllers.Search(sess, logg))

		r.Route("/stock-items", func(r chi.Router) {
			r.Get("/", controllers.ListStockItems(sess))
			r.Get("/{itemId}", controllers.GetStockItem(sess, logg))
			r.With(middleware.RequireCapability(rbac.CapManageStock, logg)).
				Post("/", controllers.CreateStockItem(sess, logg))
			r.With(middleware.RequireCapability(rbac.CapManageStock, logg)).
				Post("/{itemId}", controllers.UpdateStockItem(sess, logg))
		})

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", controllers.ListLocations(sess))
			r.Get("/{locationId}", controllers.GetLocation(sess, logg))
			r.With(middleware.RequireCapability(rbac.CapManageStock, logg)).
				Post("/", controllers.CreateLocation(sess, logg))
			r.With(middleware.RequireCapability(rbac.CapManageStock, logg)).
				Post("/{locationId}", controllers.UpdateLocation(sess, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(sess))
			r.Get("/{orderId}", controllers.GetOrder(sess, logg))
			r.Post("/", controllers.CreateOrder(sess, logg))
			r.Post("/{orderId}", controllers.UpdateOrder(sess, logg))
			// Transition-level guards live in the workflow engine; the
			// routes themselves stay open so the engine's Forbidden and
			// InvalidTransition answers surface unchanged.
			r.Post("/{orderId}/approve", controllers.ApproveOrder(sess, logg))
			r.Post("/{orderId}/reject", controllers.RejectOrder(sess, logg))
			r.Post("/{orderId}/mark-ordered", controllers.MarkOrderOrdered(sess, logg))
			r.Post("/{orderId}/mark-received", controllers.MarkOrderReceived(sess, logg))
		})

		r.With(middleware.RequireCapability(rbac.CapEditUsers, logg)).
			Get("/users", controllers.ListUsers(sess))
	})

	return r
}
