package routers

import (
	"fmt"
	"net/http"
	"time"

	"afyacare-service/internal/app/config"
	"afyacare-service/internal/app/delivery/http/controllers"
	"afyacare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// Controllers bundles every HTTP controller the router mounts.
type Controllers struct {
	User         *controllers.UserController
	Doctor       *controllers.DoctorController
	Appointment  *controllers.AppointmentController
	Prescription *controllers.PrescriptionController
	Complaint    *controllers.ComplaintController
	Contact      *controllers.ContactController
	Payment      *controllers.PaymentController
}

func NewRouter(internalConfig *config.InternalConfig, logger *zap.Logger, ctrl *Controllers) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Recovery(logger))
	router.Use(middlewares.Logging(logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, 1*time.Minute))

	prefix := fmt.Sprintf("/%s/%s", internalConfig.App.EndpointPrefix, internalConfig.App.Version)
	router.Route(prefix, func(api chi.Router) {
		attachAuthRouter(api, ctrl.User)
		attachUserRouter(api, internalConfig, logger, ctrl)
		attachDoctorRouter(api, internalConfig, logger, ctrl)
		attachAppointmentRouter(api, internalConfig, logger, ctrl)
		attachPrescriptionRouter(api, internalConfig, logger, ctrl.Prescription)
		attachComplaintRouter(api, internalConfig, logger, ctrl.Complaint)
		attachContactRouter(api, internalConfig, logger, ctrl.Contact)
		attachPaymentRouter(api, internalConfig, logger, ctrl.Payment)
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return router
}
