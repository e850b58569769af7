package routers

import (
	"afyacare-service/internal/app/config"
	"afyacare-service/internal/app/delivery/http/controllers"
	"afyacare-service/internal/app/delivery/http/middlewares"
	"afyacare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachPrescriptionRouter(api chi.Router, internalConfig *config.InternalConfig, logger *zap.Logger, prescriptionController *controllers.PrescriptionController) {
	secret := internalConfig.JWT.Secret

	api.Route("/prescriptions", func(r chi.Router) {
		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin, constvars.RoleDoctor)).Post("/", prescriptionController.Create)
		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin)).Get("/", prescriptionController.GetAll)
		r.With(middlewares.RoleAuth(logger, secret)).Get("/{prescriptionID}", prescriptionController.GetByID)
		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin, constvars.RoleDoctor)).Patch("/{prescriptionID}", prescriptionController.Update)
		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin)).Delete("/{prescriptionID}", prescriptionController.Delete)
	})
}
