package contracts

import (
	"context"

	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/dto/requests"
)

type PrescriptionRepository interface {
	FindAll(ctx context.Context) ([]models.Prescription, error)
	FindByID(ctx context.Context, prescriptionID int64) (*models.Prescription, error)
	FindByAppointmentID(ctx context.Context, appointmentID int64) ([]models.Prescription, error)
	FindByUserID(ctx context.Context, userID int64) ([]models.Prescription, error)
	FindByDoctorID(ctx context.Context, doctorID int64) ([]models.Prescription, error)
	CreatePrescription(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error)
	UpdatePrescription(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error)
	DeletePrescription(ctx context.Context, prescriptionID int64) error
}

type PrescriptionUsecase interface {
	Create(ctx context.Context, request *requests.CreatePrescription) (*models.Prescription, error)
	GetAll(ctx context.Context) ([]models.Prescription, error)
	GetByID(ctx context.Context, prescriptionID int64) (*models.Prescription, error)
	GetByAppointmentID(ctx context.Context, appointmentID int64) ([]models.Prescription, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Prescription, error)
	GetByDoctorID(ctx context.Context, doctorID int64) ([]models.Prescription, error)
	Update(ctx context.Context, prescriptionID int64, request *requests.UpdatePrescription) (*models.Prescription, error)
	Delete(ctx context.Context, prescriptionID int64) error
}
