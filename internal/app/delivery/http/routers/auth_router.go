package routers

import (
	"clinicore-service/internal/app/delivery/http/controllers"
	"clinicore-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.With(middlewares.LimitAuth).Post("/register", authController.Register)
	router.With(middlewares.LimitAuth).Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
