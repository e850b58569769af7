package contracts

import (
	"context"

	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/dto/requests"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error)
	FindByUserID(ctx context.Context, userID int64) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID int64) ([]models.Appointment, error)
	FindWithDoctorByUserID(ctx context.Context, userID int64) ([]models.AppointmentWithDoctor, error)
	FindWithPaymentByUserID(ctx context.Context, userID int64) ([]models.AppointmentWithPayment, error)
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID int64) error
}

type AppointmentUsecase interface {
	Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)
	GetByID(ctx context.Context, appointmentID int64) (*models.Appointment, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Appointment, error)
	GetByDoctorID(ctx context.Context, doctorID int64) ([]models.Appointment, error)
	GetWithDoctorByUserID(ctx context.Context, userID int64) ([]models.AppointmentWithDoctor, error)
	GetWithPaymentByUserID(ctx context.Context, userID int64) ([]models.AppointmentWithPayment, error)
	Update(ctx context.Context, appointmentID int64, request *requests.UpdateAppointment) (*models.Appointment, error)
	Delete(ctx context.Context, appointmentID int64) error
}
