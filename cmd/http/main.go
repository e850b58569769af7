package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"afyacare-service/internal/app/config"
	"afyacare-service/internal/app/delivery/http/controllers"
	"afyacare-service/internal/app/delivery/http/routers"
	"afyacare-service/internal/app/drivers/database"
	"afyacare-service/internal/app/drivers/logger"
	smtpdriver "afyacare-service/internal/app/drivers/mailer"
	"afyacare-service/internal/app/drivers/messaging"
	"afyacare-service/internal/app/services/core/appointment"
	"afyacare-service/internal/app/services/core/complaint"
	"afyacare-service/internal/app/services/core/contact"
	"afyacare-service/internal/app/services/core/doctor"
	"afyacare-service/internal/app/services/core/payment"
	"afyacare-service/internal/app/services/core/prescription"
	"afyacare-service/internal/app/services/core/user"
	mailerservice "afyacare-service/internal/app/services/shared/mailer"
	"afyacare-service/internal/app/services/shared/mpesa"
	redisrepo "afyacare-service/internal/app/services/shared/redis"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)
	smtpClient := smtpdriver.NewSMTPClient(driverConfig)

	mailerWorkerStop, err := mailerservice.StartMailerWorker(rabbitMQConn, smtpClient, internalConfig, zapLogger)
	if err != nil {
		log.Fatalf("Failed to start mailer worker: %s", err.Error())
	}

	redisRepository := redisrepo.NewRedisRepository(redisClient)
	mailerService := mailerservice.NewMailerService(rabbitMQConn, internalConfig, zapLogger)
	mpesaService := mpesa.NewDarajaService(internalConfig, redisRepository, zapLogger)

	userRepository := user.NewUserPostgresRepository(postgresDB)
	doctorRepository := doctor.NewDoctorPostgresRepository(postgresDB)
	appointmentRepository := appointment.NewAppointmentPostgresRepository(postgresDB)
	prescriptionRepository := prescription.NewPrescriptionPostgresRepository(postgresDB)
	complaintRepository := complaint.NewComplaintPostgresRepository(postgresDB)
	contactRepository := contact.NewContactPostgresRepository(postgresDB)
	paymentRepository := payment.NewPaymentPostgresRepository(postgresDB)

	userUsecase := user.NewUserUsecase(userRepository, mailerService, internalConfig, zapLogger)
	doctorUsecase := doctor.NewDoctorUsecase(doctorRepository, zapLogger)
	appointmentUsecase := appointment.NewAppointmentUsecase(appointmentRepository, doctorRepository, zapLogger)
	prescriptionUsecase := prescription.NewPrescriptionUsecase(prescriptionRepository, appointmentRepository, zapLogger)
	complaintUsecase := complaint.NewComplaintUsecase(complaintRepository, appointmentRepository, zapLogger)
	contactUsecase := contact.NewContactUsecase(contactRepository, zapLogger)
	paymentUsecase := payment.NewPaymentUsecase(paymentRepository, appointmentRepository, mpesaService, zapLogger)

	router := routers.NewRouter(internalConfig, zapLogger, &routers.Controllers{
		User:         controllers.NewUserController(userUsecase, zapLogger),
		Doctor:       controllers.NewDoctorController(doctorUsecase, zapLogger),
		Appointment:  controllers.NewAppointmentController(appointmentUsecase, zapLogger),
		Prescription: controllers.NewPrescriptionController(prescriptionUsecase, zapLogger),
		Complaint:    controllers.NewComplaintController(complaintUsecase, zapLogger),
		Contact:      controllers.NewContactController(contactUsecase, zapLogger),
		Payment:      controllers.NewPaymentController(paymentUsecase, zapLogger),
	})

	bootstrap := &config.Bootstrap{
		Router:           router,
		PostgresDB:       postgresDB,
		Redis:            redisClient,
		RabbitMQ:         rabbitMQConn,
		Logger:           zapLogger,
		DriverConfig:     driverConfig,
		InternalConfig:   internalConfig,
		MailerWorkerStop: mailerWorkerStop,
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: router,
	}

	go func() {
		log.Printf("HTTP server listening on %s", internalConfig.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve HTTP: %s", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(internalConfig.App.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %s", err.Error())
	}
	if err := bootstrap.Shutdown(ctx); err != nil {
		log.Printf("Resource shutdown error: %s", err.Error())
	}
	log.Println("Server exited")
}
