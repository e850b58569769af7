package routers

import (
	"afyacare-service/internal/app/config"
	"afyacare-service/internal/app/delivery/http/middlewares"
	"afyacare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachDoctorRouter(api chi.Router, internalConfig *config.InternalConfig, logger *zap.Logger, ctrl *Controllers) {
	secret := internalConfig.JWT.Secret

	api.Route("/doctors", func(r chi.Router) {
		// The doctor directory is public so patients can browse it before
		// registering.
		r.Get("/", ctrl.Doctor.GetAll)
		r.Get("/{doctorID}", ctrl.Doctor.GetByID)

		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin)).Post("/", ctrl.Doctor.Create)
		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin)).Patch("/{doctorID}", ctrl.Doctor.Update)
		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin)).Delete("/{doctorID}", ctrl.Doctor.Delete)

		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin, constvars.RoleDoctor)).
			Get("/{doctorID}/appointments", ctrl.Appointment.GetByDoctorID)
		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin, constvars.RoleDoctor)).
			Get("/{doctorID}/prescriptions", ctrl.Prescription.GetByDoctorID)
	})
}
