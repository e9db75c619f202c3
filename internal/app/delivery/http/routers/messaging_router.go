package routers

import (
	"fmt"

	"clinicore-service/internal/app/delivery/http/controllers"
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMessagingRoutes(router chi.Router, middlewares *middlewares.Middlewares, messagingController *controllers.MessagingController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", messagingController.ListThreads)
	router.Post("/", messagingController.CreateThread)
	router.Get(fmt.Sprintf("/{%s}/messages", constvars.URLParamThreadID), messagingController.ListMessages)
	router.Post(fmt.Sprintf("/{%s}/messages", constvars.URLParamThreadID), messagingController.SendMessage)
}
