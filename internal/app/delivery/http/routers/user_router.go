package routers

import (
	"afyacare-service/internal/app/config"
	"afyacare-service/internal/app/delivery/http/middlewares"
	"afyacare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachUserRouter(api chi.Router, internalConfig *config.InternalConfig, logger *zap.Logger, ctrl *Controllers) {
	secret := internalConfig.JWT.Secret

	api.Route("/users", func(r chi.Router) {
		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin)).Get("/", ctrl.User.GetAll)

		r.Group(func(authed chi.Router) {
			authed.Use(middlewares.RoleAuth(logger, secret))
			authed.Get("/{userID}", ctrl.User.GetByID)
			authed.Patch("/{userID}", ctrl.User.Update)
			authed.Get("/{userID}/appointments", ctrl.Appointment.GetByUserID)
			authed.Get("/{userID}/appointments/doctors", ctrl.Appointment.GetWithDoctorByUserID)
			authed.Get("/{userID}/appointments/payments", ctrl.Appointment.GetWithPaymentByUserID)
			authed.Get("/{userID}/prescriptions", ctrl.Prescription.GetByUserID)
			authed.Get("/{userID}/complaints", ctrl.Complaint.GetByUserID)
		})

		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin)).Delete("/{userID}", ctrl.User.Delete)
	})
}
