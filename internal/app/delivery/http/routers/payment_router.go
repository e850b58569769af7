package routers

import (
	"afyacare-service/internal/app/config"
	"afyacare-service/internal/app/delivery/http/controllers"
	"afyacare-service/internal/app/delivery/http/middlewares"
	"afyacare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachPaymentRouter(api chi.Router, internalConfig *config.InternalConfig, logger *zap.Logger, paymentController *controllers.PaymentController) {
	secret := internalConfig.JWT.Secret

	api.Route("/payments", func(r chi.Router) {
		r.With(middlewares.RoleAuth(logger, secret)).Post("/", paymentController.Initiate)
		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin)).Get("/", paymentController.GetAll)
		r.With(middlewares.RoleAuth(logger, secret)).Get("/{paymentID}", paymentController.GetByID)
		r.With(middlewares.RoleAuth(logger, secret)).Get("/appointment/{appointmentID}", paymentController.GetByAppointmentID)
		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin)).Patch("/{paymentID}", paymentController.Update)
		r.With(middlewares.RoleAuth(logger, secret, constvars.RoleAdmin)).Delete("/{paymentID}", paymentController.Delete)
	})

	// The gateway cannot authenticate with a bearer token; the callback is
	// correlated by the paymentID it carries instead.
	api.Post("/mpesa/callback", paymentController.MpesaCallback)
}
