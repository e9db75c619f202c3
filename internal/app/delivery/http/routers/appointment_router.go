package routers

import (
	"clinicore-service/internal/app/delivery/http/controllers"
	"clinicore-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.Get("/upcoming", appointmentController.ListUpcomingAppointments)
	router.Post("/", appointmentController.CreateAppointment)
}
