package routers

import (
	"clinicore-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

// Dashboard counters back the public landing page, so no session required.
func attachDashboardRoutes(router chi.Router, dashboardController *controllers.DashboardController) {
	router.Get("/stats", dashboardController.GetStats)
}
