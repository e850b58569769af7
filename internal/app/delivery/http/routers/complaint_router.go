package routers

import (
	"afyacare-service/internal/app/config"
	"afyacare-service/internal/app/delivery/http/controllers"
	"afyacare-service/internal/app/delivery/http/middlewares"
	"afyacare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachComplaintRouter(api chi.Router, internalConfig *config.InternalConfig, logger *zap.Logger, complaintController *controllers.ComplaintController) {
	secret := internalConfig.JWT.Secret

	api.Route("/complaints", func(r chi.Router) {
		r.With(middlewares.RoleAuth(logger, secret)).Post("/", complaintController.Create)
		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin)).Get("/", complaintController.GetAll)
		r.With(middlewares.RoleAuth(logger, secret)).Get("/{complaintID}", complaintController.GetByID)
		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin)).Patch("/{complaintID}", complaintController.Update)
		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin)).Delete("/{complaintID}", complaintController.Delete)
	})
}
