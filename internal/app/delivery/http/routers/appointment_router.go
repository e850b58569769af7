package routers

import (
	"afyacare-service/internal/app/config"
	"afyacare-service/internal/app/delivery/http/middlewares"
	"afyacare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachAppointmentRouter(api chi.Router, internalConfig *config.InternalConfig, logger *zap.Logger, ctrl *Controllers) {
	secret := internalConfig.JWT.Secret

	api.Route("/appointments", func(r chi.Router) {
		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin)).Get("/", ctrl.Appointment.GetAll)

		r.Group(func(authed chi.Router) {
			authed.Use(middlewares.RoleAuth(logger, secret))
			authed.Post("/", ctrl.Appointment.Create)
			authed.Get("/{appointmentID}", ctrl.Appointment.GetByID)
			authed.Patch("/{appointmentID}", ctrl.Appointment.Update)
			authed.Get("/{appointmentID}/prescriptions", ctrl.Prescription.GetByAppointmentID)
		})

		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin)).Delete("/{appointmentID}", ctrl.Appointment.Delete)
	})
}
