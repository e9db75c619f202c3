package routers

import (
	"fmt"

	"clinicore-service/internal/app/delivery/http/controllers"
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachInvoiceRoutes(router chi.Router, middlewares *middlewares.Middlewares, invoiceController *controllers.InvoiceController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", invoiceController.ListInvoices)
	router.Post("/", invoiceController.CreateInvoice)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamInvoiceID), invoiceController.GetInvoiceByID)
}
