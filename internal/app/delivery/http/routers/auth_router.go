package routers

import (
	"afyacare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAuthRouter(api chi.Router, userController *controllers.UserController) {
	api.Route("/auth", func(r chi.Router) {
		r.Post("/register", userController.Register)
		r.Post("/verify", userController.Verify)
		r.Post("/resend-verification", userController.ResendVerification)
		r.Post("/login", userController.Login)
	})
}
