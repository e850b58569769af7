package routers

import (
	"afyacare-service/internal/app/config"
	"afyacare-service/internal/app/delivery/http/controllers"
	"afyacare-service/internal/app/delivery/http/middlewares"
	"afyacare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachContactRouter(api chi.Router, internalConfig *config.InternalConfig, logger *zap.Logger, contactController *controllers.ContactController) {
	api.Route("/contacts", func(r chi.Router) {
		// Anyone may reach out through the contact form.
		r.Post("/", contactController.Create)
		r.With(middlewares.RoleAuth(logger, internalConfig.JWT.Secret, constvars.RoleAdmin)).Get("/", contactController.GetAll)
	})
}
