package routers

import (
	"fmt"

	"clinicore-service/internal/app/delivery/http/controllers"
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", patientController.ListPatients)
	router.Post("/", patientController.CreatePatient)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamPatientID), patientController.GetPatientByID)
}
